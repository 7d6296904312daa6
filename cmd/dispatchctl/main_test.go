package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"source":"file"}`), 0o644))

	testCases := []struct {
		name    string
		args    []string
		stdin   string
		want    string
		wantErr bool
	}{
		{name: "путь к файлу", args: []string{path}, want: `{"source":"file"}`},
		{name: "JSON в аргументе", args: []string{`{"source":"arg"}`}, want: `{"source":"arg"}`},
		{name: "stdin", stdin: "  {\"source\":\"stdin\"}\n", want: `{"source":"stdin"}`},
		{name: "несуществующий путь трактуется как JSON", args: []string{filepath.Join(dir, "missing.json")}, want: filepath.Join(dir, "missing.json")},
		{name: "каталог трактуется как JSON", args: []string{dir}, want: dir},
		{name: "пустой stdin", stdin: "   ", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := resolveInput(tc.args, strings.NewReader(tc.stdin))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(data))
		})
	}
}

func TestRunDispatch_FileBackend(t *testing.T) {
	// Подготовка: отдельный каталог данных и реестр для процесса
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("STORE_BACKEND", "file")
	t.Setenv("LEDGER_BACKEND", "leveldb")
	t.Setenv("LOCK_BACKEND", "memory")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("MIRROR_DIR", filepath.Join(dir, "data"))
	t.Setenv("LEDGER_PATH", filepath.Join(dir, "ledger_db"))
	t.Setenv("WEBHOOK_URL", "")
	t.Setenv("NATS_URL", "")
	t.Setenv("LOG_LEVEL", "error")

	run := func(args []string, stdin string) (string, error) {
		cmd := newRootCmd()
		var out, errOut bytes.Buffer
		cmd.SetArgs(args)
		cmd.SetIn(strings.NewReader(stdin))
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		err := cmd.Execute()
		return out.String(), err
	}

	// Действие: больница, машина, затем вызов
	out, err := run([]string{"register-hospital", `{"hospital_id":"h1","name":"City General","location":{"latitude":40.71,"longitude":-74.0},"emergency_capacity":3}`}, "")
	require.NoError(t, err, out)

	out, err = run([]string{"register-ambulance"}, `{"ambulance_id":"a1","hospital_id":"h1","registration_number":"AMB-1"}`)
	require.NoError(t, err, out)

	requestPath := filepath.Join(dir, "request.json")
	require.NoError(t, os.WriteFile(requestPath, []byte(`{"request_id":"r1","user_id":"u1","user_location":{"latitude":40.72,"longitude":-74.0},"emergency_type":"cardiac"}`), 0o644))
	out, err = run([]string{"dispatch", requestPath}, "")
	require.NoError(t, err, out)

	// Проверки
	var response struct {
		RequestID      string `json:"request_id"`
		AmbulanceID    string `json:"ambulance_id"`
		Status         string `json:"status"`
		BlockchainTxID string `json:"blockchain_tx_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "r1", response.RequestID)
	assert.Equal(t, "a1", response.AmbulanceID)
	assert.Equal(t, "Assigned", response.Status)
	assert.NotEmpty(t, response.BlockchainTxID)

	out, err = run([]string{"ledger", "get", response.BlockchainTxID}, "")
	require.NoError(t, err, out)
	assert.Contains(t, out, "HEALTHCARE_EMERGENCY_RESPONSE")

	// Второй вызов: единственная машина уже занята
	out, err = run([]string{"dispatch", `{"user_id":"u2","user_location":{"latitude":40.72,"longitude":-74.0},"emergency_type":"trauma"}`}, "")
	require.Error(t, err)
	assert.Contains(t, out, "NO_AVAILABLE_AMBULANCE")

	out, err = run([]string{"ledger", "verify"}, "")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"blocks": 3`)
}

func TestRunDispatch_InvalidInput(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LEDGER_BACKEND", "leveldb")
	t.Setenv("LOCK_BACKEND", "memory")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{"dispatch", `{"user_id":"u1"}`})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, out.String(), "invalid input")
}

// chdir меняет рабочую директорию на время теста и восстанавливает её после
// (аналог t.Chdir из Go 1.24 для текущего тулчейна)
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
