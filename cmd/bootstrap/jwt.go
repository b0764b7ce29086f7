package bootstrap

import (
	"referral-engine/internal/pkg/config"
	"referral-engine/internal/pkg/jwt"
	"referral-engine/internal/pkg/reftoken"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewAttributionCodec,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET must not be empty")
	}
	return jwt.NewService(cfg.JWT.Secret)
}

func NewAttributionCodec(cfg config.Config) *reftoken.Codec {
	if cfg.Attribution.TokenSecret == "" {
		panic("ATTRIBUTION_TOKEN_SECRET must not be empty")
	}
	return reftoken.NewCodec(cfg.Attribution.TokenSecret)
}
