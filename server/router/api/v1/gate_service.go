package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// gateTokenHeader carries the session token issued on unlock. Clients
// replay it so a reload does not force a fresh password entry.
const gateTokenHeader = "X-Gate-Token"

type unlockRequest struct {
	Password string `json:"password" validate:"required"`
}

type gateStatusResponse struct {
	Unlocked      bool       `json:"unlocked"`
	UnlockedUntil *time.Time `json:"unlockedUntil,omitempty"`
	Token         string     `json:"token,omitempty"`
}

func (s *APIV1Service) GateStatus(c echo.Context) error {
	unlocked, until := s.Gate.Status()
	if !unlocked {
		if exp, ok := s.Gate.VerifyToken(c.Request().Header.Get(gateTokenHeader)); ok {
			unlocked, until = true, exp
		}
	}
	resp := gateStatusResponse{Unlocked: unlocked}
	if unlocked {
		resp.UnlockedUntil = &until
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *APIV1Service) GateUnlock(c echo.Context) error {
	req := &unlockRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	if err := s.Gate.SubmitPassword(req.Password); err != nil {
		return toHTTPError(err)
	}
	token, err := s.Gate.IssueToken()
	if err != nil {
		return toHTTPError(err)
	}
	unlocked, until := s.Gate.Status()
	return c.JSON(http.StatusOK, gateStatusResponse{Unlocked: unlocked, UnlockedUntil: &until, Token: token})
}

// gateGuard runs fn when the gate is open, either in memory or via a
// session token replayed by the client.
func (s *APIV1Service) gateGuard(c echo.Context, fn func() error) error {
	return s.Gate.GuardWithToken(c.Request().Header.Get(gateTokenHeader), fn)
}
