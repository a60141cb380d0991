package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the keepsake server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the data directory
	Data string
	// Driver selects the persistence backend: localfs, sqlite, postgres or remote
	Driver string
	// DSN points to where keepsake stores its own data (sqlite path or postgres DSN)
	DSN string
	// RemoteBaseURL is the base URL of the upstream keepsake API when Driver is "remote"
	RemoteBaseURL string
	// Version is the current version of server
	Version string

	// GateSecretHash is the bcrypt hash of the access gate password.
	// KEEPSAKE_GATE_SECRET_HASH
	GateSecretHash string
	// GateUnlockWindow is how long a successful unlock lasts.
	// KEEPSAKE_GATE_UNLOCK_WINDOW (default: 5m)
	GateUnlockWindow time.Duration
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	switch p.Driver {
	case "localfs", "sqlite", "postgres", "remote":
	case "":
		p.Driver = "localfs"
	default:
		return errors.Errorf("unknown driver %q: only localfs, sqlite, postgres and remote are supported", p.Driver)
	}

	if p.GateUnlockWindow <= 0 {
		p.GateUnlockWindow = 5 * time.Minute
	}

	if p.Driver == "remote" {
		if p.RemoteBaseURL == "" {
			return errors.New("remote driver requires a base URL")
		}
		return nil
	}

	if p.Mode == "prod" && p.Data == "" {
		if runtime.GOOS == "windows" {
			p.Data = filepath.Join(os.Getenv("ProgramData"), "keepsake")
			if _, err := os.Stat(p.Data); os.IsNotExist(err) {
				if err := os.MkdirAll(p.Data, 0770); err != nil {
					slog.Error("failed to create data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
					return err
				}
			}
		} else {
			p.Data = "/var/opt/keepsake"
		}
	}
	if p.Data == "" {
		p.Data = "."
	}

	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		slog.Error("failed to check data dir", slog.String("data", p.Data), slog.String("error", err.Error()))
		return err
	}
	p.Data = dataDir

	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("keepsake_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}
	if p.Driver == "postgres" && p.DSN == "" {
		return errors.New("postgres driver requires a DSN")
	}

	return nil
}
