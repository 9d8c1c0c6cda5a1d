//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/handler/dto/request"
	resdto "canteen-backoffice/internal/handler/dto/response"
	"canteen-backoffice/tests/common/authtest"
	"canteen-backoffice/tests/common/dbtest"
	"canteen-backoffice/tests/common/httptest"
	"canteen-backoffice/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用管理者を作成
	companyID := dbtest.DefaultCompanyID(s.T(), s.DB)
	dbtest.CreateTestAdmin(s.T(), s.DB, "super@example.com", admin.KindSuperadmin.String(), nil)
	dbtest.CreateTestAdmin(s.T(), s.DB, "manager@example.com", admin.KindManager.String(), &companyID)
	dbtest.CreateTestAdmin(s.T(), s.DB, "collector@example.com", admin.KindMealCollector.String(), &companyID)
	dbtest.CreateTestAdmin(s.T(), s.DB, "inactive@example.com", admin.KindManager.String(), &companyID)

	// 非アクティブ管理者を作成
	_, err := s.DB.Exec(s.T().Context(), "UPDATE admins SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "manager@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しない管理者",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しない管理者でログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "manager@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブ管理者",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "非アクティブ管理者はログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "manager@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				// 成功時のレスポンス形式チェック
				loginRes := httptest.DecodeJSON[resdto.LoginResponse](t, w)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.NotEmpty(t, loginRes.RefreshToken, "リフレッシュトークンが空")
				require.Equal(t, admin.KindManager.String(), loginRes.Admin.Kind)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"), "アクセストークンのCookieがない")

				// last_loginが更新されることを確認
				var lastLogin any
				err := s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM admins WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
		description       string
	}{
		{
			name: "正常なリフレッシュ",
			setupRefreshToken: func() string {
				reqBody := request.LoginRequest{
					Email:    "manager@example.com",
					Password: "password123",
				}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				return httptest.DecodeJSON[resdto.LoginResponse](s.T(), w).RefreshToken
			},
			expectedStatus: http.StatusOK,
			description:    "有効なリフレッシュトークンでトークンが更新されること",
		},
		{
			name: "無効なリフレッシュトークン",
			setupRefreshToken: func() string {
				return "invalid-refresh-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なリフレッシュトークンは拒否されること",
		},
		{
			name: "空のリフレッシュトークン",
			setupRefreshToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "空のリフレッシュトークンは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RefreshRequest{RefreshToken: tt.setupRefreshToken()}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				refreshRes := httptest.DecodeJSON[resdto.RefreshResponse](t, w)
				require.NotEmpty(t, refreshRes.AccessToken, "新しいアクセストークンが空")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
		description    string
	}{
		{
			name: "正常なログアウト",
			setupToken: func() string {
				return authtest.LoginAdmin(s.T(), s.Router, "manager@example.com", "password123")
			},
			expectedStatus: http.StatusNoContent,
			description:    "有効なトークンでログアウトできること",
		},
		{
			name: "無効なトークン",
			setupToken: func() string {
				return "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでログアウトできないこと",
		},
		{
			name: "トークンなし",
			setupToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでログアウトできないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, tt.setupToken())
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupAdmin     func() (string, string, string) // email, kind, token
		expectedStatus int
		description    string
	}{
		{
			name: "スーパー管理者の情報取得",
			setupAdmin: func() (string, string, string) {
				email := "super2@example.com"
				kind := admin.KindSuperadmin.String()
				return email, kind, authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, kind, nil)
			},
			expectedStatus: http.StatusOK,
			description:    "スーパー管理者の情報が取得できること",
		},
		{
			name: "食事担当者の情報取得",
			setupAdmin: func() (string, string, string) {
				email := "collector2@example.com"
				kind := admin.KindMealCollector.String()
				companyID := dbtest.DefaultCompanyID(s.T(), s.DB)
				return email, kind, authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, kind, &companyID)
			},
			expectedStatus: http.StatusOK,
			description:    "食事担当者の情報が取得できること",
		},
		{
			name: "無効なトークン",
			setupAdmin: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでは情報取得できないこと",
		},
		{
			name: "トークンなし",
			setupAdmin: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでは情報取得できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, kind, token := tt.setupAdmin()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				// レスポンス内容をチェック
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email, "レスポンスにメールアドレスが含まれていない")
				require.Contains(t, responseBody, kind, "レスポンスに権限種別が含まれていない")
				require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		adminID := dbtest.CreateTestAdmin(t, s.DB, "expiry@example.com", admin.KindSuperadmin.String(), nil)
		expiredToken := s.jwtHelper.CreateExpiredToken(t, admin.Principal{ID: adminID, Kind: admin.KindSuperadmin})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})

	s.Run("リフレッシュトークンはBearerとして使えない", func() {
		t := s.T()

		adminID := dbtest.CreateTestAdmin(t, s.DB, "bearer@example.com", admin.KindSuperadmin.String(), nil)
		refresh := s.jwtHelper.RefreshToken(t, admin.Principal{ID: adminID, Kind: admin.KindSuperadmin})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refresh)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestKindGuards() {
	s.Run("権限種別ごとのアクセス制御", func() {
		t := s.T()
		companyID := dbtest.DefaultCompanyID(t, s.DB)

		collector := s.jwtHelper.GenerateToken(t, admin.Principal{ID: uuid.New(), Kind: admin.KindMealCollector, CompanyID: &companyID})
		manager := s.jwtHelper.GenerateToken(t, admin.Principal{ID: uuid.New(), Kind: admin.KindManager, CompanyID: &companyID})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reports/meals", nil, collector)
		require.Equal(t, http.StatusForbidden, w.Code, "食事担当者はレポートを参照できない")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reports/meals", nil, manager)
		require.Equal(t, http.StatusOK, w.Code, "マネージャーはレポートを参照できる")
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("認証が必要なエンドポイント", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodPost, "/api/meals/record"},
			{http.MethodGet, "/api/reports/meals"},
			{http.MethodGet, "/api/dashboard/summary"},
			{http.MethodPost, "/api/fees"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "認証なしでは拒否されるべき: %s %s", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		t := s.T()

		email := "concurrent@example.com"
		dbtest.CreateTestAdmin(t, s.DB, email, admin.KindSuperadmin.String(), nil)

		token1 := authtest.LoginAdmin(t, s.Router, email, "password123")
		token2 := authtest.LoginAdmin(t, s.Router, email, "password123")

		require.NotEqual(t, token1, token2, "同時ログインで同じトークンが返された")

		// 両方のトークンが有効であることを確認
		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code, "最初のトークンが無効")
		require.Equal(t, http.StatusOK, w2.Code, "二番目のトークンが無効")
	})
}
