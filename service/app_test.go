package service

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blogshell/app/repositories"
	"blogshell/app/routes"
	"blogshell/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = `# a small session
post tech "Jane" "Hi There" "first post" "x,y" T1
comment tech tech.Hi_There "John" "nice" T2
bogus line
show tech
`

// runApp runs the application with stdin and returns stdout and stderr.
func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var out, errOut bytes.Buffer
	app := NewApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(context.Background(), append([]string{"blogshell", "--log-level", "error"}, args...))
	return out.String(), errOut.String(), err
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunFromFile(t *testing.T) {
	out, errOut, err := runApp(t, "", "--store", "memory", "run", writeScript(t, script))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "in tech:\n\n"))
	assert.Contains(t, out, "\ttitle: Hi There\n")
	assert.Contains(t, out, "\tpermalink: T2\n")
	assert.Contains(t, errOut, "unknown command bogus")
}

func TestRunFromStdin(t *testing.T) {
	out, _, err := runApp(t, "post b \"Ann\" \"Soup\" \"hot\" \"\" T1\nfind b hot\n", "--store", "memory", "run")
	require.NoError(t, err)
	assert.Contains(t, out, "\ttitle: Soup\n")

	out, _, err = runApp(t, "show b\n", "--store", "memory", "run", "-")
	require.NoError(t, err)
	assert.Equal(t, "in b:\n\n", out)
}

func TestRunMissingFile(t *testing.T) {
	_, _, err := runApp(t, "", "--store", "memory", "run", filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorContains(t, err, "failed to open command file")
}

func TestPersistentStoreCommands(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "blogs.db")
	store := []string{"--store", "sqlite", "--db-path", dbPath, "--memory-fallback=false"}

	_, _, err := runApp(t, "", append(store, "run", writeScript(t, script))...)
	require.NoError(t, err)

	out, _, err := runApp(t, "", append(store, "blogs")...)
	require.NoError(t, err)
	assert.Equal(t, "tech\n", out)

	backupFile := filepath.Join(dir, "backup.jsonl")
	out, _, err = runApp(t, "", append(store, "backup", backupFile)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Database backed up successfully")

	out, _, err = runApp(t, "n\n", append(store, "clean")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Operation cancelled")
	assert.FileExists(t, dbPath)

	out, _, err = runApp(t, "", append(store, "clean", "--yes")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Database cleaned successfully")
	assert.NoFileExists(t, dbPath)

	out, _, err = runApp(t, "", append(store, "restore", backupFile)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Database restored successfully")

	out, _, err = runApp(t, "show tech\n", append(store, "run")...)
	require.NoError(t, err)
	assert.Contains(t, out, "\tuserName: John\n")
}

func TestRestoreRejectsMissingOrEmptyFile(t *testing.T) {
	store := []string{"--store", "memory"}

	_, _, err := runApp(t, "", append(store, "restore", filepath.Join(t.TempDir(), "nope"))...)
	assert.ErrorContains(t, err, "backup file does not exist")

	empty := writeScript(t, "")
	_, _, err = runApp(t, "", append(store, "restore", empty)...)
	assert.ErrorContains(t, err, "backup file is empty")

	_, _, err = runApp(t, "", append(store, "restore")...)
	assert.ErrorContains(t, err, "backup file path required")
}

func TestCleanMemoryStore(t *testing.T) {
	out, _, err := runApp(t, "", "--store", "memory", "clean")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to clean")
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := runApp(t, "", "--store", "postgres", "blogs")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestFallbackToMemory(t *testing.T) {
	// a regular file where a badger directory is expected
	blocker := writeScript(t, "not a database")

	out, _, err := runApp(t, "post b \"Ann\" \"Soup\" \"hot\" \"\" T1\nshow b\n",
		"--store", "badger", "--db-path", blocker, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "\ttitle: Soup\n")

	_, _, err = runApp(t, "", "--store", "badger", "--db-path", blocker, "--memory-fallback=false", "blogs")
	assert.Error(t, err)
}

func TestRunExitCode(t *testing.T) {
	assert.Equal(t, 1, Run(context.Background(), []string{"blogshell", "--store", "postgres", "blogs"}))
}

func TestServerGracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	service := services.NewBlogService(repositories.NewMemoryBlogRepository())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, routes.SetupRoutes(service), logger)
	}()

	resp, err := http.Post("http://"+ln.Addr().String()+"/api/commands", "text/plain",
		strings.NewReader(`post tech "Jane" "Hi" "b" "" T1`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}
