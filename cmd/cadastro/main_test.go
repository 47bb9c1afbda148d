package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstream struct {
	*httptest.Server
	saved []map[string]string
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}

	r := chi.NewRouter()
	r.Get("/ws/{cep}/json/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if chi.URLParam(r, "cep") != "01310100" {
			_, _ = w.Write([]byte(`{"erro": true}`))
			return
		}
		_, _ = w.Write([]byte(`{"logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	})
	r.Post("/api/cadastro", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		u.saved = append(u.saved, body)

		w.Header().Set("Content-Type", "application/json")
		if body["plataforma"] != "SUSEP" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success": false, "message": "Plataforma inválida"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success": true, "message": "Dados cadastrados com sucesso!"}`))
	})

	u.Server = httptest.NewServer(r)
	t.Cleanup(u.Close)
	return u
}

func execute(t *testing.T, u *upstream, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--lookup-url", u.URL, "--api-url", u.URL}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCEPCommand(t *testing.T) {
	u := newUpstream(t)

	out, err := execute(t, u, "cep", "01310-100")
	require.NoError(t, err)
	assert.Contains(t, out, "Logradouro:  Avenida Paulista")
	assert.Contains(t, out, "Endereço:    Avenida Paulista")
	assert.Contains(t, out, "Cidade:      São Paulo")
	assert.Contains(t, out, "Estado:      SP")
}

func TestCEPCommand_NotFound(t *testing.T) {
	u := newUpstream(t)

	out, err := execute(t, u, "cep", "99999-999")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "Erro ao buscar CEP: CEP não encontrado\n", out)
}

func TestCEPCommand_WrongLength(t *testing.T) {
	u := newUpstream(t)

	_, err := execute(t, u, "cep", "1234")
	require.ErrorIs(t, err, errReported)
}

func TestSubmitCommand(t *testing.T) {
	u := newUpstream(t)

	out, err := execute(t, u, "submit", "--lookup",
		"--set", "cnpj=12.345.678/0001-90",
		"--set", "plataforma=SUSEP",
		"--set", "categoria=P",
		"--set", "regra_comissao=40641669",
		"--set", "cep=01310-100",
	)
	require.NoError(t, err)
	assert.Regexp(t, `Cadastro realizado com sucesso!\nCódigo gerado: [0-9]{7}P40641669\n`, out)

	require.Len(t, u.saved, 1)
	saved := u.saved[0]
	assert.Regexp(t, `^[0-9]{7}P40641669$`, saved["codigo"])
	assert.Equal(t, "Avenida Paulista", saved["endereco"])
	assert.Equal(t, "SP", saved["estado"])
	assert.Equal(t, "12.345.678/0001-90", saved["cnpj"])
}

func TestSubmitCommand_Rejected(t *testing.T) {
	u := newUpstream(t)

	out, err := execute(t, u, "submit", "--set", "plataforma=NOPE")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "Erro ao salvar: Plataforma inválida\n", out)
}

func TestSubmitCommand_UnknownField(t *testing.T) {
	u := newUpstream(t)

	_, err := execute(t, u, "submit", "--set", "inexistente=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inexistente")
	assert.Empty(t, u.saved)
}
