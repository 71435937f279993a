package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/middleware"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// セッションCookieに入れる署名付きトークン
type sessionTokenIssuer struct {
	secret []byte
}

func (i *sessionTokenIssuer) Issue(username string, role model.Role, sessionID string, now time.Time, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": string(role),
		"jti":  sessionID,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Order{},
		&model.Staff{},
		&model.StaffSession{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	staffRepo := infraRepo.NewStaffGormRepository(gormDB)
	sessionRepo := infraRepo.NewSessionGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := &sessionTokenIssuer{secret: []byte(cfg.SessionSecret)}

	//初期スタッフ投入（パスワードはハッシュ化して保存）
	if err := db.SeedStaff(context.Background(), staffRepo, hasher, cfg); err != nil {
		log.Fatal("seed staff failed", zap.Error(err))
	}

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(orderRepo, clock, cfg.ModifyWindow, log)
	loginUC := auth.NewLoginUsecase(staffRepo, sessionRepo, verifier, issuer, idGen, clock, cfg.SessionTTL)
	logoutUC := auth.NewLogoutUsecase(sessionRepo)

	//Handler生成
	limiter := middleware.NewLoginRateLimiter()
	handlers := server.Handlers{
		Auth:    handler.NewAuthHandler(loginUC, logoutUC, cfg, limiter),
		Menu:    handler.NewMenuHandler(),
		Order:   handler.NewOrderHandler(orderUC),
		Kitchen: handler.NewKitchenHandler(orderUC),
		Admin:   handler.NewAdminHandler(orderUC),
	}

	e := server.New(log)
	server.RegisterRoutes(e, cfg, sessionRepo, handlers)

	//Server起動
	addr := ":" + cfg.Port
	go func() {
		if err := server.Start(e, addr); err != nil {
			log.Info("server stopped", zap.Error(err))
		}
	}()
	log.Info("server running", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx, e); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
