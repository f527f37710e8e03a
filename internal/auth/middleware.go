package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
)

type ctxKey string

const (
	CtxUsuarioID ctxKey = "usuarioID"
	CtxPerfil    ctxKey = "perfil"
)

// Perfis de acesso reconhecidos pelos guards de rota.
const (
	PerfilSuperAdmin         = "SUPER_ADMIN"
	PerfilAdminPrefeitura    = "ADMIN_PREFEITURA"
	PerfilAdminEmpresa       = "ADMIN_EMPRESA"
	PerfilColaboradorEmpresa = "COLABORADOR_EMPRESA"
)

// MiddlewareAutenticacao valida o bearer token e injeta usuário e
// perfil no contexto da requisição.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuarioID, claims.UsuarioID)
		ctx = context.WithValue(ctx, CtxPerfil, claims.Perfil)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExigirPerfil libera a rota apenas para os perfis listados. Sem
// usuário no contexto a negativa é distinta (não autenticado).
func ExigirPerfil(perfis ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			perfil, ok := r.Context().Value(CtxPerfil).(string)
			if !ok {
				http.Error(w, "Não autenticado", http.StatusUnauthorized)
				return
			}
			for _, p := range perfis {
				if p == perfil {
					next.ServeHTTP(w, r)
					return
				}
			}
			apperror.Escrever(w, apperror.Proibido(
				fmt.Sprintf("acesso restrito aos perfis: %s", strings.Join(perfis, ", "))))
		})
	}
}

// UsuarioDoContexto devolve o ID do usuário autenticado, se houver.
func UsuarioDoContexto(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(CtxUsuarioID).(uint)
	return id, ok
}
