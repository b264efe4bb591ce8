package app

import (
	"teateach_backend/docs"
	"teateach_backend/internal/config"
	"teateach_backend/internal/middleware"
	"teateach_backend/internal/model"
	"teateach_backend/internal/util"
	"teateach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 导出文件
	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerTestPaperRoutes(authGroup, c)
		a.registerQuestionRoutes(authGroup, c)
	}
}

// registerTestPaperRoutes 查询对所有登录用户开放，组卷和修改仅限教师和管理员
func (a *App) registerTestPaperRoutes(group *gin.RouterGroup, c *controllers) {
	papers := group.Group("/test-papers")
	{
		papers.GET("", c.testPaper.List)
		papers.GET("/:id", c.testPaper.Get)
		papers.GET("/course/:courseId", c.testPaper.ListByCourse)
		papers.GET("/instructor/:instructorId", c.testPaper.ListByInstructor)
		papers.GET("/question/:questionId", c.testPaper.ListByQuestion)

		manage := papers.Group("")
		manage.Use(middleware.RoleMiddleware(model.Teacher))
		{
			manage.POST("", c.testPaper.Create)
			manage.POST("/generate", c.testPaper.Generate)
			manage.POST("/preview", c.testPaper.Preview)
			manage.PUT("/:id", c.testPaper.Update)
			manage.DELETE("/:id", c.testPaper.Delete)
			manage.POST("/:id/export", c.testPaper.Export)
		}
	}
}

func (a *App) registerQuestionRoutes(group *gin.RouterGroup, c *controllers) {
	questions := group.Group("/questions")
	{
		questions.GET("", c.question.List)
		questions.GET("/filter", c.question.Filter)
		questions.GET("/knowledge-point/:knowledgePointId", c.question.ListByKnowledgePoint)
		questions.GET("/:id", c.question.Get)

		manage := questions.Group("")
		manage.Use(middleware.RoleMiddleware(model.Teacher))
		{
			manage.POST("", c.question.Create)
			manage.PUT("/:id", c.question.Update)
			manage.DELETE("/:id", c.question.Delete)
		}
	}
}
