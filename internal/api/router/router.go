package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"worktrack/internal/api/handler"
	"worktrack/internal/api/middleware"
	"worktrack/internal/core/cascade"
	"worktrack/internal/core/event"
	coreissue "worktrack/internal/core/issue"
	"worktrack/internal/pkg/config"
	"worktrack/internal/repository"
	"worktrack/internal/service"
	"worktrack/pkg/constants"
)

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 事件总线: 级联删除与历史记录器在此注册
	bus := event.NewBus(logger)
	cascade.Register(bus, logger)
	recorder := coreissue.NewHistoryRecorder(logger)
	recorder.Register(bus)
	stateMachine := coreissue.NewStateMachine(bus, logger)

	// 初始化Repository
	departmentRepo := repository.NewDepartmentRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	commentRepo := repository.NewIssueCommentRepository(db)
	attachmentRepo := repository.NewIssueAttachmentRepository(db)
	historyRepo := repository.NewIssueHistoryRepository(db)

	// 初始化Service
	departmentService := service.NewDepartmentService(departmentRepo, db, bus)
	projectService := service.NewProjectService(projectRepo, departmentRepo, db, bus)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, teamRepo, userRepo)
	teamService := service.NewTeamService(teamRepo, projectRepo, teamMemberService, db, bus)
	userService := service.NewUserService(userRepo, db, bus)
	authService := service.NewAuthService(userService, userRepo, refreshTokenRepo)
	issueService := service.NewIssueService(issueRepo, projectRepo, userRepo, stateMachine, db, bus)
	commentService := service.NewIssueCommentService(commentRepo, issueRepo, userRepo)
	attachmentService := service.NewIssueAttachmentService(attachmentRepo, issueRepo)
	historyService := service.NewIssueHistoryService(historyRepo, issueRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	projectHandler := handler.NewProjectHandler(projectService)
	teamHandler := handler.NewTeamHandler(teamService)
	teamMemberHandler := handler.NewTeamMemberHandler(teamMemberService)
	userHandler := handler.NewUserHandler(userService)
	issueHandler := handler.NewIssueHandler(issueService)
	issueDetailHandler := handler.NewIssueDetailHandler(commentService, attachmentService, historyService)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 认证相关(无需token)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		// 需要认证的路由
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/auth/logout", authHandler.Logout)
			authed.GET("/auth/me", authHandler.GetMe)

			// 部门管理
			departments := authed.Group("/departments")
			{
				departments.POST("", middleware.RequireRoles(constants.RoleProjectManager), departmentHandler.Create)
				departments.GET("", departmentHandler.List)
				departments.GET("/:id", departmentHandler.GetByID)
				departments.PUT("/:id", middleware.RequireRoles(constants.RoleProjectManager), departmentHandler.Update)
				departments.DELETE("/:id", middleware.RequireRoles(constants.RoleProjectManager), departmentHandler.Delete)
			}

			// 项目管理
			projects := authed.Group("/projects")
			{
				projects.POST("", middleware.RequireRoles(constants.RoleProjectManager), projectHandler.Create)
				projects.GET("", projectHandler.List)
				projects.GET("/:id", projectHandler.GetByID)
				projects.PUT("/:id", middleware.RequireRoles(constants.RoleProjectManager), projectHandler.Update)
				projects.PATCH("/:id/status", middleware.RequireRoles(constants.RoleProjectManager), projectHandler.UpdateStatus)
				projects.DELETE("/:id", middleware.RequireRoles(constants.RoleProjectManager), projectHandler.Delete)
			}

			// 团队管理
			teams := authed.Group("/teams")
			{
				teams.POST("", middleware.RequireRoles(constants.RoleProjectManager, constants.RoleTeamLeader), teamHandler.Create)
				teams.GET("", teamHandler.List)
				teams.GET("/:id", teamHandler.GetByID)
				teams.PUT("/:id", middleware.RequireRoles(constants.RoleProjectManager, constants.RoleTeamLeader), teamHandler.Update)
				teams.DELETE("/:id", middleware.RequireRoles(constants.RoleProjectManager, constants.RoleTeamLeader), teamHandler.Delete)

				// 团队成员
				teams.POST("/:id/members", middleware.RequireRoles(constants.RoleProjectManager, constants.RoleTeamLeader), teamMemberHandler.AddMember)
				teams.GET("/:id/members", teamMemberHandler.ListMembers)
			}
			authed.DELETE("/team_members/:member_id",
				middleware.RequireRoles(constants.RoleProjectManager, constants.RoleTeamLeader),
				teamMemberHandler.DeleteMember)

			// 用户管理
			users := authed.Group("/users")
			{
				users.GET("", userHandler.List)
				users.GET("/:id", userHandler.GetByID)
				users.PUT("/:id", userHandler.Update)
				users.POST("/:id/roles", middleware.RequireRoles(constants.RoleProjectManager), userHandler.AddRole)
				users.DELETE("/:id/roles", middleware.RequireRoles(constants.RoleProjectManager), userHandler.RemoveRole)
				users.DELETE("/:id", middleware.RequireRoles(constants.RoleProjectManager), userHandler.Delete)
			}

			// 事项管理
			issues := authed.Group("/issues")
			{
				issues.POST("", issueHandler.Create)
				issues.GET("", issueHandler.List)
				issues.GET("/:id", issueHandler.GetByID)
				issues.PUT("/:id", issueHandler.Update)
				issues.PATCH("/:id/status", issueHandler.UpdateStatus)
				issues.DELETE("/:id", issueHandler.Delete)

				// 事项附属资源
				issues.GET("/:id/comments", issueDetailHandler.ListComments)
				issues.GET("/:id/attachments", issueDetailHandler.ListAttachments)
				issues.GET("/:id/histories", issueDetailHandler.ListHistories)
			}

			// 评论与附件
			authed.POST("/issue_comments", issueDetailHandler.CreateComment)
			authed.PUT("/issue_comments/:id", issueDetailHandler.UpdateComment)
			authed.DELETE("/issue_comments/:id", issueDetailHandler.DeleteComment)
			authed.POST("/issue_attachments", issueDetailHandler.CreateAttachment)
			authed.DELETE("/issue_attachments/:id", issueDetailHandler.DeleteAttachment)
		}
	}

	return r
}
