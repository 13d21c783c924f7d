package router

import (
	"campus-admin/internal/config"
	"campus-admin/internal/dto"
	"campus-admin/internal/handler"
	"campus-admin/internal/middleware"
	"campus-admin/internal/models"
	"campus-admin/internal/repository"
	"campus-admin/internal/service"
	"campus-admin/internal/utils"
	"campus-admin/internal/validator"
	"campus-admin/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	limiter *redis_limiter.RedisLimiter,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件；CORS 在认证之前，预检请求直接返回 204
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithField("panic", recovered).Error("请求处理发生panic")
		utils.InternalError(c)
	}))
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "校园信息管理系统 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	adminRepo := repository.NewAdminRepository(db)
	studentRepo := repository.NewResourceRepository[models.Student](db, []string{"name", "class_name"})
	courseRepo := repository.NewResourceRepository[models.Course](db, []string{"name", "code", "teacher"})
	teacherRepo := repository.NewResourceRepository[models.Teacher](db, []string{"name", "title", "phone", "email"})

	// 初始化Service
	authService := service.NewAuthService(adminRepo, jwtManager, cfg)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService, limiter, logger)

	studentHandler := handler.NewResourceHandler(studentRepo, handler.ResourceDescriptor[models.Student]{
		Label:       "学生信息",
		NotFoundMsg: "学生信息不存在",
		Bind: func(c *gin.Context) (*models.Student, []string, error) {
			var payload dto.StudentPayload
			if err := c.ShouldBindJSON(&payload); err != nil {
				return nil, nil, err
			}
			student, violations := validator.ValidateStudent(&payload)
			return student, violations, nil
		},
		Fields: func(item *models.Student) map[string]interface{} { return item.FieldMap() },
	}, logger)

	courseHandler := handler.NewResourceHandler(courseRepo, handler.ResourceDescriptor[models.Course]{
		Label:       "课程信息",
		NotFoundMsg: "课程信息不存在",
		ConflictMsg: "课程编号已存在，请更换后重试",
		Bind: func(c *gin.Context) (*models.Course, []string, error) {
			var payload dto.CoursePayload
			if err := c.ShouldBindJSON(&payload); err != nil {
				return nil, nil, err
			}
			course, violations := validator.ValidateCourse(&payload)
			return course, violations, nil
		},
		Fields: func(item *models.Course) map[string]interface{} { return item.FieldMap() },
	}, logger)

	teacherHandler := handler.NewResourceHandler(teacherRepo, handler.ResourceDescriptor[models.Teacher]{
		Label:       "教师信息",
		NotFoundMsg: "教师信息不存在",
		Bind: func(c *gin.Context) (*models.Teacher, []string, error) {
			var payload dto.TeacherPayload
			if err := c.ShouldBindJSON(&payload); err != nil {
				return nil, nil, err
			}
			teacher, violations := validator.ValidateTeacher(&payload)
			return teacher, violations, nil
		},
		Fields: func(item *models.Teacher) map[string]interface{} { return item.FieldMap() },
	}, logger)

	// 公开路由
	r.POST("/auth-register", authHandler.Register)
	r.POST("/auth-login", authHandler.Login)

	// 认证路由
	registerResource(r, "/students", jwtManager, studentHandler)
	registerResource(r, "/courses", jwtManager, courseHandler)
	registerResource(r, "/teachers", jwtManager, teacherHandler)

	return r
}

// registerResource 挂载一组资源的增删改查路由
func registerResource[T any](r *gin.Engine, path string, jwtManager *utils.JWTManager, h *handler.ResourceHandler[T]) {
	group := r.Group(path)
	group.Use(middleware.AuthMiddleware(jwtManager))
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
