// Package httpapi exposes the service layer over HTTP: a gin router with a
// uniform response envelope, bearer-token authentication backed by the
// session registry, and transparent operation auditing on every mutating
// route.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/auth"
	"github.com/Dvesiz/Ship-Management-System/internal/server/config"
	"github.com/Dvesiz/Ship-Management-System/internal/server/services"
)

type Server struct {
	cfg    *config.Config
	logger logging.Logger

	signer   *auth.Signer
	sessions *auth.SessionRegistry

	users        *services.UserService
	ships        *services.ShipService
	categories   *services.CategoryService
	crews        *services.CrewService
	voyages      *services.VoyageService
	fuel         *services.FuelService
	maintenance  *services.MaintenanceService
	certificates *services.CertificateService
	messages     *services.MessageService
	files        *services.FileService
	auditQuery   *services.AuditService
	audit        AuditSink
}

type Services struct {
	Users        *services.UserService
	Ships        *services.ShipService
	Categories   *services.CategoryService
	Crews        *services.CrewService
	Voyages      *services.VoyageService
	Fuel         *services.FuelService
	Maintenance  *services.MaintenanceService
	Certificates *services.CertificateService
	Messages     *services.MessageService
	Files        *services.FileService
	Audit        *services.AuditService
}

func NewServer(cfg *config.Config, logger logging.Logger, signer *auth.Signer,
	sessions *auth.SessionRegistry, svcs Services) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		signer:       signer,
		sessions:     sessions,
		users:        svcs.Users,
		ships:        svcs.Ships,
		categories:   svcs.Categories,
		crews:        svcs.Crews,
		voyages:      svcs.Voyages,
		fuel:         svcs.Fuel,
		maintenance:  svcs.Maintenance,
		certificates: svcs.Certificates,
		messages:     svcs.Messages,
		files:        svcs.Files,
		auditQuery:   svcs.Audit,
		audit:        svcs.Audit,
	}
}

// Router builds the gin engine with all routes registered. Audited routes
// name their module and operation at registration time.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Public auth surface.
	user := r.Group("/user")
	{
		user.POST("/send-code", s.audited("user", "SEND_CODE", "send verification code"), s.handleSendCode)
		user.POST("/register", s.audited("user", "REGISTER", "register account"), s.handleRegister)
		user.POST("/login", s.audited("user", "LOGIN", "password login"), s.handleLogin)
		user.POST("/loginByEmail", s.audited("user", "LOGIN_EMAIL", "email code login"), s.handleLoginByEmail)
		user.POST("/reset-password", s.audited("user", "RESET_PASSWORD", "reset password"), s.handleResetPassword)
	}

	authed := r.Group("/", s.requireAuth())

	me := authed.Group("/user")
	{
		me.GET("/info", s.handleUserInfo)
		me.PUT("/update", s.audited("user", "UPDATE_PROFILE", "update profile"), s.handleUpdateProfile)
		me.PUT("/password", s.audited("user", "UPDATE_PASSWORD", "change password"), s.handleUpdatePassword)
		me.PUT("/avatar", s.audited("user", "UPDATE_AVATAR", "update avatar"), s.handleUpdateAvatar)
		me.GET("/search", s.handleUserSearch)
	}

	admin := authed.Group("/admin", s.requireAdmin())
	{
		admin.GET("/user/list", s.handleUserPage)
		admin.GET("/user/stats", s.handleUserStats)
		admin.GET("/user/:id", s.handleUserByID)
		admin.PUT("/user/:id/role", s.audited("user", "UPDATE_ROLE", "change user role"), s.handleUpdateRole)
		admin.PUT("/user/:id/password", s.audited("user", "ADMIN_RESET_PASSWORD", "admin reset password"), s.handleAdminResetPassword)
		admin.DELETE("/user/:id", s.audited("user", "DELETE", "delete user"), s.handleDeleteUser)
		admin.DELETE("/user/batch", s.audited("user", "BATCH_DELETE", "batch delete users"), s.handleDeleteUsersBatch)
	}

	ship := authed.Group("/ship")
	{
		ship.POST("/add", s.audited("ship", "ADD", "add ship"), s.handleShipAdd)
		ship.GET("/list", s.handleShipList)
		ship.GET("/:id", s.handleShipDetail)
		ship.PUT("/update", s.audited("ship", "UPDATE", "update ship"), s.handleShipUpdate)
		ship.DELETE("/:id", s.audited("ship", "DELETE", "delete ship"), s.handleShipDelete)
		ship.DELETE("/batch", s.audited("ship", "BATCH_DELETE", "batch delete ships"), s.handleShipDeleteBatch)
	}

	category := authed.Group("/ship-category")
	{
		category.POST("/add", s.audited("ship-category", "ADD", "add category"), s.handleCategoryAdd)
		category.GET("/list", s.handleCategoryList)
		category.PUT("/update", s.audited("ship-category", "UPDATE", "update category"), s.handleCategoryUpdate)
		category.DELETE("/:id", s.audited("ship-category", "DELETE", "delete category"), s.handleCategoryDelete)
	}

	crew := authed.Group("/crew")
	{
		crew.POST("/add", s.audited("crew", "ADD", "add crew member"), s.handleCrewAdd)
		crew.GET("/list", s.handleCrewList)
		crew.GET("/:id", s.handleCrewDetail)
		crew.PUT("/update", s.audited("crew", "UPDATE", "update crew member"), s.handleCrewUpdate)
		crew.DELETE("/:id", s.audited("crew", "DELETE", "delete crew member"), s.handleCrewDelete)
		crew.DELETE("/batch", s.audited("crew", "BATCH_DELETE", "batch delete crew"), s.handleCrewDeleteBatch)
	}

	voyage := authed.Group("/voyages")
	{
		voyage.POST("/add", s.audited("voyage", "ADD", "add voyage"), s.handleVoyageAdd)
		voyage.GET("/list", s.handleVoyageList)
		voyage.GET("/:id", s.handleVoyageDetail)
		voyage.PUT("/update", s.audited("voyage", "UPDATE", "update voyage"), s.handleVoyageUpdate)
		voyage.PUT("/:id/finish", s.audited("voyage", "FINISH", "finish voyage"), s.handleVoyageFinish)
		voyage.DELETE("/:id", s.audited("voyage", "DELETE", "delete voyage"), s.handleVoyageDelete)
		voyage.DELETE("/batch", s.audited("voyage", "BATCH_DELETE", "batch delete voyages"), s.handleVoyageDeleteBatch)
	}

	fuel := authed.Group("/fuel")
	{
		fuel.POST("/add", s.audited("fuel", "ADD", "add fuel record"), s.handleFuelAdd)
		fuel.GET("/list", s.handleFuelList)
		fuel.GET("/summary", s.handleFuelSummary)
		fuel.GET("/:id", s.handleFuelDetail)
		fuel.PUT("/update", s.audited("fuel", "UPDATE", "update fuel record"), s.handleFuelUpdate)
		fuel.DELETE("/:id", s.audited("fuel", "DELETE", "delete fuel record"), s.handleFuelDelete)
		fuel.DELETE("/batch", s.audited("fuel", "BATCH_DELETE", "batch delete fuel records"), s.handleFuelDeleteBatch)
	}

	maintenance := authed.Group("/maintenance")
	{
		maintenance.POST("/add", s.audited("maintenance", "ADD", "add maintenance record"), s.handleMaintenanceAdd)
		maintenance.GET("/list", s.handleMaintenanceList)
		maintenance.GET("/:id", s.handleMaintenanceDetail)
		maintenance.PUT("/update", s.audited("maintenance", "UPDATE", "update maintenance record"), s.handleMaintenanceUpdate)
		maintenance.DELETE("/:id", s.audited("maintenance", "DELETE", "delete maintenance record"), s.handleMaintenanceDelete)
		maintenance.DELETE("/batch", s.audited("maintenance", "BATCH_DELETE", "batch delete maintenance records"), s.handleMaintenanceDeleteBatch)
	}

	certificate := authed.Group("/certificate")
	{
		certificate.POST("/add", s.audited("certificate", "ADD", "add certificate"), s.handleCertificateAdd)
		certificate.GET("/list", s.handleCertificateList)
		certificate.GET("/stats", s.handleCertificateStats)
		certificate.GET("/ship/:id", s.handleCertificatesByShip)
		certificate.GET("/:id", s.handleCertificateDetail)
		certificate.PUT("/update", s.audited("certificate", "UPDATE", "update certificate"), s.handleCertificateUpdate)
		certificate.DELETE("/:id", s.audited("certificate", "DELETE", "delete certificate"), s.handleCertificateDelete)
		certificate.DELETE("/batch", s.audited("certificate", "BATCH_DELETE", "batch delete certificates"), s.handleCertificateDeleteBatch)
	}

	message := authed.Group("/message")
	{
		message.POST("/send", s.audited("message", "SEND", "send message"), s.handleMessageSend)
		message.GET("/list", s.handleMessageList)
		message.GET("/unread-count", s.handleMessageUnreadCount)
		message.PUT("/:id/read", s.handleMessageMarkRead)
		message.PUT("/read-all", s.handleMessageMarkAllRead)
		message.DELETE("/:id", s.handleMessageDelete)
	}

	logs := authed.Group("/log", s.requireAdmin())
	{
		logs.GET("/list", s.handleLogPage)
		logs.GET("/:id", s.handleLogDetail)
		logs.DELETE("/batch", s.audited("log", "BATCH_DELETE", "batch delete logs"), s.handleLogDeleteBatch)
		logs.DELETE("/clean/:days", s.audited("log", "CLEAN", "clean old logs"), s.handleLogClean)
	}

	authed.POST("/upload", s.audited("file", "UPLOAD", "upload file"), s.handleUpload)

	return r
}
