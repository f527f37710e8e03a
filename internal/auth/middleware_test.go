package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proximoOK() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(42, PerfilAdminPrefeitura)
	require.NoError(t, err)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UsuarioID)
	assert.Equal(t, PerfilAdminPrefeitura, claims.Perfil)
}

func TestMiddlewareAutenticacao(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	handler := MiddlewareAutenticacao(proximoOK())

	t.Run("sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/prefeituras", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token inválido", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/prefeituras", nil)
		req.Header.Set("Authorization", "Bearer lixo")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token válido injeta contexto", func(t *testing.T) {
		var idVisto uint
		var perfilVisto string
		interno := MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idVisto, _ = UsuarioDoContexto(r.Context())
			perfilVisto, _ = r.Context().Value(CtxPerfil).(string)
			w.WriteHeader(http.StatusOK)
		}))

		token, err := GerarToken(7, PerfilSuperAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/prefeituras", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		interno.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint(7), idVisto)
		assert.Equal(t, PerfilSuperAdmin, perfilVisto)
	})
}

func TestExigirPerfil(t *testing.T) {
	guard := ExigirPerfil(PerfilSuperAdmin, PerfilAdminPrefeitura)(proximoOK())

	requisicaoComPerfil := func(perfil string) *http.Request {
		req := httptest.NewRequest("GET", "/processos", nil)
		ctx := context.WithValue(req.Context(), CtxUsuarioID, uint(1))
		ctx = context.WithValue(ctx, CtxPerfil, perfil)
		return req.WithContext(ctx)
	}

	t.Run("perfil permitido passa", func(t *testing.T) {
		for _, p := range []string{PerfilSuperAdmin, PerfilAdminPrefeitura} {
			rec := httptest.NewRecorder()
			guard.ServeHTTP(rec, requisicaoComPerfil(p))
			assert.Equal(t, http.StatusOK, rec.Code, p)
		}
	})

	t.Run("perfil fora da lista recebe 403", func(t *testing.T) {
		for _, p := range []string{PerfilAdminEmpresa, PerfilColaboradorEmpresa, "VISITANTE"} {
			rec := httptest.NewRecorder()
			guard.ServeHTTP(rec, requisicaoComPerfil(p))
			assert.Equal(t, http.StatusForbidden, rec.Code, p)
		}
	})

	t.Run("sem usuário no contexto recebe 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, httptest.NewRequest("GET", "/processos", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
