// Session wiring: resolve directories, load config, attach the store,
// and build the workspace a subcommand operates on.
package cli

import (
	"fmt"

	"github.com/stride-careers/stride/internal/objstore"
	"github.com/stride-careers/stride/internal/paths"
	"github.com/stride-careers/stride/pkg/sqlite"
	"github.com/stride-careers/stride/pkg/types"
	"github.com/stride-careers/stride/pkg/workspace"
)

// session holds everything a subcommand needs, torn down by close.
type session struct {
	store  types.Store
	ws     *workspace.Workspace
	userID string
}

// openSession loads config, attaches the SQLite store, and builds the
// workspace. Callers must close the session when done.
func openSession() (*session, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	bucketDir, err := paths.ResolveBucketDir(cfg.GetString(cfgKeyBucketDir), dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve bucket dir: %w", err)
	}

	store := sqlite.NewBackend()
	if err := store.Attach(types.Config{
		Backend:   cfg.GetString(cfgKeyBackend),
		DataDir:   dataDir,
		BucketDir: bucketDir,
		UserID:    cfg.GetString(cfgKeyUserID),
	}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	userID := cfg.GetString(cfgKeyUserID)
	ws := workspace.New(store, objstore.New(bucketDir), types.StaticIdentity(userID))
	ws.SetLogger(newLogger(dataDir))

	return &session{store: store, ws: ws, userID: userID}, nil
}

// close detaches the store.
func (s *session) close() error {
	return s.store.Detach()
}
