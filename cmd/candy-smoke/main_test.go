package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/zzispp/candymachine-go-sdk/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	t.Setenv(config.EnvRPC, "")
	out, err := execute(t, "config", "--variant", "legacy")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	require.Equal(t, config.VariantLegacy, cfg.Variant)
	require.Equal(t, "My Collection NFT", cfg.Collection.Name)
}

func TestConfigCommandFileAndEnv(t *testing.T) {
	t.Setenv(config.EnvRPC, "https://rpc.example.com")
	path := filepath.Join(t.TempDir(), "smoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: core\nmints: 1\n"), 0o600))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	require.Equal(t, config.VariantCore, cfg.Variant)
	require.Equal(t, 1, cfg.Mints)
	require.Equal(t, "https://rpc.example.com", cfg.RPC)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	_, err := execute(t, "run", "--variant", "v4")
	require.ErrorIs(t, err, config.ErrUnknownVariant)

	_, err = execute(t, "run", "--mints", "-1")
	require.Error(t, err)
}

func TestLoadIdentity(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	ints := make([]int, len(key))
	for i, b := range key {
		ints[i] = int(b)
	}
	raw, err := json.Marshal(ints)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	got, err := loadIdentity(path)
	require.NoError(t, err)
	require.Equal(t, key.PublicKey(), got.PublicKey())

	fresh, err := loadIdentity("")
	require.NoError(t, err)
	require.NotEqual(t, key.PublicKey(), fresh.PublicKey())

	_, err = loadIdentity(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoke.log")
	log, cleanup, err := newLogger("debug", path)
	require.NoError(t, err)
	log.Info("hello")
	cleanup()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "hello")

	_, _, err = newLogger("loud", "")
	require.Error(t, err)
}
