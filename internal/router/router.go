package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"ContainerIQ/config"
	"ContainerIQ/internal/handler"
	"ContainerIQ/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.TimeoutMiddleware())
	h.Use(middleware.CORSMiddleware())
	if config.Cfg.TracingEnabled {
		h.Use(middleware.OpenTelemetryMiddleware())
	}

	// 浏览器端开启会话 + CSRF 防护，秘钥未配置时跳过（纯 API 部署）
	csrfEnabled := config.Cfg.SessionSecret != "" && config.Cfg.CSRFSecret != ""
	if csrfEnabled {
		h.Use(middleware.SessionMiddleware())
		h.Use(middleware.CSRFMiddleware())
	}

	api := h.Group("/api")

	// 认证相关路由
	auth := api.Group("/auth")
	if config.Cfg.RateLimitEnabled {
		auth.Use(middleware.AuthRateLimitMiddleware())
	}
	{
		if csrfEnabled {
			auth.GET("/csrf", handler.GetCSRFToken)
		}

		auth.POST("/signup", handler.Signup)
		auth.POST("/login", handler.Login)
		auth.POST("/token/refresh", handler.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(), handler.Logout)

		// 验证码相关路由，发送侧单独限更紧的流
		email := auth.Group("/email")
		{
			email.POST("/verify", handler.VerifyEmail)
			email.POST("/resend", middleware.OTPRateLimitMiddleware(), handler.ResendOTP)
		}
	}

	// 认证后的路由统一挂通用限流
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	if config.Cfg.RateLimitEnabled {
		authed.Use(middleware.GeneralRateLimitMiddleware())
	}

	// 用户相关路由，注册向导的 profile / organization 两步在这里
	users := authed.Group("/users")
	{
		users.GET("/me", handler.GetMe)
		users.PUT("/me/profile", handler.SubmitProfile)
		users.PUT("/me/organization", handler.SubmitOrganization)
	}

	// 角色引导向导路由，按角色分组，角色不匹配由 service 拒绝
	onboarding := authed.Group("/onboarding")
	{
		insurance := onboarding.Group("/insurance")
		{
			insurance.GET("/me", handler.GetInsuranceMe)
			insurance.POST("/license", handler.SubmitInsuranceLicense)
			insurance.POST("/coverage", handler.SubmitInsuranceCoverage)
			insurance.POST("/policy", handler.SubmitInsurancePolicy)
			insurance.POST("/claims", handler.SubmitInsuranceClaims)
			insurance.POST("/documents", handler.SubmitInsuranceDocuments)
		}

		shipper := onboarding.Group("/shipper")
		{
			shipper.GET("/me", handler.GetShipperMe)
			shipper.POST("/business", handler.SubmitShipperBusiness)
			shipper.POST("/cargo", handler.SubmitShipperCargo)
			shipper.POST("/consents", handler.SubmitShipperConsents)
			shipper.POST("/documents", handler.SubmitShipperDocuments)
		}

		fleet := onboarding.Group("/fleet")
		{
			fleet.GET("/me", handler.GetFleetMe)
			fleet.POST("/profile", handler.SubmitFleetProfile)
			fleet.POST("/compliance", handler.SubmitFleetCompliance)
			fleet.POST("/documents", handler.SubmitFleetDocuments)
		}
	}

	// 文件路由，引导过程中的证照上传
	files := authed.Group("/files")
	{
		files.POST("", middleware.UploadRateLimitMiddleware(), handler.UploadFile)
		files.GET("/me", handler.ListMyFiles)
		files.GET("/:id/content", handler.GetFileContent)
		files.DELETE("/:id", handler.DeleteFile)
	}

	// 看板路由，只有完成引导的账号可访问
	dashboard := authed.Group("/dashboard")
	dashboard.Use(middleware.OnboardingGuardMiddleware())
	{
		dashboard.GET("/kpis", handler.GetDashboardKPIs)
		dashboard.GET("/containers", handler.ListContainers)
	}
}
