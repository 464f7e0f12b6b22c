package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAuthenticationHandlers(t *testing.T) {
	branch := "Miraflores"

	tests := []struct {
		name       string
		claims     *domain.Claims
		method     string
		path       string
		body       string
		setup      func(m *mocks.MockAuthenticator)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "Registro retorna 201",
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"username":"lima_user","email":"lima@oreo.pe","password":"password123","role":"BRANCH","branch":"Miraflores"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Register(gomock.Any(), domain.RegisterRequest{
					Username: "lima_user",
					Email:    "lima@oreo.pe",
					Password: "password123",
					Role:     domain.RoleBranch,
					Branch:   &branch,
				}).Return(&domain.User{ID: "u_1", Username: "lima_user", Role: domain.RoleBranch, Branch: &branch}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"username":"lima_user"`,
		},
		{
			name:   "Registro duplicado retorna 409",
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"username":"admin","email":"a@oreo.pe","password":"password123","role":"CENTRAL"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "username já cadastrado"))
			},
			wantStatus: http.StatusConflict,
			wantBody:   apiErrors.ErrUserAlreadyExists,
		},
		{
			name:   "Login com sucesso",
			method: http.MethodPost,
			path:   "/auth/login",
			body:   `{"username":"admin","password":"password123"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "admin", "password123").
					Return(&domain.LoginResponse{Token: "jwt", ExpiresIn: 3600, Role: domain.RoleCentral}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"jwt"`,
		},
		{
			name:       "Login sem senha",
			method:     http.MethodPost,
			path:       "/auth/login",
			body:       `{"username":"admin"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "Credenciais inválidas",
			method: http.MethodPost,
			path:   "/auth/login",
			body:   `{"username":"admin","password":"errada"}`,
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "admin", "errada").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:   "Central lista usuários",
			claims: centralClaims,
			method: http.MethodGet,
			path:   "/users",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ListUsers(gomock.Any(), centralClaims.Actor()).
					Return([]*domain.User{{ID: "u_1", Username: "admin", Role: domain.RoleCentral}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"u_1"`,
		},
		{
			name:       "Filial não lista usuários",
			claims:     branchClaims,
			method:     http.MethodGet,
			path:       "/users",
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "Usuário inexistente",
			claims: centralClaims,
			method: http.MethodGet,
			path:   "/users/u_x",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().GetUser(gomock.Any(), centralClaims.Actor(), "u_x").Return(nil, authenticating.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   apiErrors.ErrUserNotFound,
		},
		{
			name:   "Central remove usuário",
			claims: centralClaims,
			method: http.MethodDelete,
			path:   "/users/u_2",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().DeleteUser(gomock.Any(), centralClaims.Actor(), "u_2").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			rt := router.New(
				router.WithRoutes(Authentication(service)...),
				router.WithRoutes(User(service)...),
			)
			rec := serve(t, rt, tt.claims, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
