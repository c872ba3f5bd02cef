package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/delivery/http/handler"
	"github.com/gomatri/matrimony-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	membershipHandler   *handler.MembershipHandler
	profileViewHandler  *handler.ProfileViewHandler
	messageHandler      *handler.MessageHandler
	matchRequestHandler *handler.MatchRequestHandler
	preferenceHandler   *handler.PreferenceHandler
	addressHandler      *handler.AddressHandler
	reportHandler       *handler.ReportHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	membershipHandler *handler.MembershipHandler,
	profileViewHandler *handler.ProfileViewHandler,
	messageHandler *handler.MessageHandler,
	matchRequestHandler *handler.MatchRequestHandler,
	preferenceHandler *handler.PreferenceHandler,
	addressHandler *handler.AddressHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		membershipHandler:   membershipHandler,
		profileViewHandler:  profileViewHandler,
		messageHandler:      messageHandler,
		matchRequestHandler: matchRequestHandler,
		preferenceHandler:   preferenceHandler,
		addressHandler:      addressHandler,
		reportHandler:       reportHandler,
		authMiddleware:      authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public registration and login)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profiles := protected.Group("/profiles")
			{
				profiles.POST("", r.profileHandler.CreateProfile)
				profiles.GET("/mine", r.profileHandler.GetMyProfiles)
				profiles.GET("/search", r.profileHandler.SearchProfiles)
				profiles.GET("/:profileId", r.profileHandler.GetProfileByID)
				profiles.PUT("/:profileId", r.profileHandler.UpdateProfile)
				profiles.DELETE("/:profileId", r.profileHandler.DeleteProfile)

				// Preferences attached to a profile
				profiles.GET("/:profileId/preference", r.preferenceHandler.GetPreferenceByProfileID)
			}

			// Membership routes
			memberships := protected.Group("/memberships")
			{
				memberships.POST("", r.authMiddleware.RequireAdmin(), r.membershipHandler.AddMembership)
				memberships.GET("/profile/:profileId", r.membershipHandler.GetMembershipByProfileID)
				memberships.GET("/:membershipId", r.authMiddleware.RequireAdmin(), r.membershipHandler.GetMembershipByID)
				memberships.PUT("/:membershipId", r.authMiddleware.RequireAdmin(), r.membershipHandler.UpdateMembership)
				memberships.DELETE("/:membershipId", r.authMiddleware.RequireAdmin(), r.membershipHandler.DeleteMembership)
			}

			// Profile view routes
			views := protected.Group("/profileviews")
			{
				views.POST("/add/viewer/:viewerId/profile/:profileId", r.profileViewHandler.AddView)
				views.GET("/profile/:profileId", r.profileViewHandler.GetViewsByProfileID)
				views.POST("", r.authMiddleware.RequireAdmin(), r.profileViewHandler.AddViewDirect)
				views.GET("/:viewId", r.authMiddleware.RequireAdmin(), r.profileViewHandler.GetViewByID)
				views.DELETE("/:viewId", r.authMiddleware.RequireAdmin(), r.profileViewHandler.DeleteViewByID)
				views.DELETE("/before/:date", r.authMiddleware.RequireAdmin(), r.profileViewHandler.DeleteOldViews)
			}

			// Message routes
			messages := protected.Group("/messages")
			{
				messages.POST("", r.messageHandler.SendMessage)
				messages.GET("/sent", r.messageHandler.GetSentMessages)
				messages.GET("/received", r.messageHandler.GetReceivedMessages)
				messages.POST("/:messageId/seen", r.messageHandler.MarkSeen)
				messages.GET("", r.authMiddleware.RequireAdmin(), r.messageHandler.GetAllMessages)
				messages.GET("/:messageId", r.authMiddleware.RequireAdmin(), r.messageHandler.GetMessageByID)
				messages.DELETE("/:messageId", r.authMiddleware.RequireAdmin(), r.messageHandler.DeleteMessageByID)
			}

			// Match request routes
			matchRequests := protected.Group("/matchrequests")
			{
				matchRequests.POST("/profile/:profileId", r.matchRequestHandler.SendRequest)
				matchRequests.GET("/sent/:profileId", r.matchRequestHandler.GetSentRequests)
				matchRequests.GET("/received/:profileId", r.matchRequestHandler.GetReceivedRequests)
				matchRequests.POST("/:requestId/accept/profile/:profileId", r.matchRequestHandler.AcceptRequest)
				matchRequests.POST("/:requestId/reject/profile/:profileId", r.matchRequestHandler.RejectRequest)
				matchRequests.GET("/:requestId", r.authMiddleware.RequireAdmin(), r.matchRequestHandler.GetRequestByID)
				matchRequests.DELETE("/:requestId", r.authMiddleware.RequireAdmin(), r.matchRequestHandler.DeleteRequestByID)
			}

			// Preference routes
			preferences := protected.Group("/preferences")
			{
				preferences.POST("", r.preferenceHandler.AddPreference)
				preferences.GET("/:preferenceId", r.preferenceHandler.GetPreferenceByID)
				preferences.PUT("/:preferenceId", r.preferenceHandler.UpdatePreference)
				preferences.DELETE("/:preferenceId", r.preferenceHandler.DeletePreference)
			}

			// Address routes
			addresses := protected.Group("/addresses")
			{
				addresses.POST("", r.addressHandler.AddAddress)
				addresses.GET("/:addressId", r.addressHandler.GetAddressByID)
				addresses.PUT("/:addressId", r.addressHandler.UpdateAddress)
				addresses.GET("", r.authMiddleware.RequireAdmin(), r.addressHandler.GetAllAddresses)
				addresses.DELETE("/:addressId", r.authMiddleware.RequireAdmin(), r.addressHandler.DeleteAddress)
			}

			// Report routes
			reports := protected.Group("/reports")
			{
				reports.POST("", r.reportHandler.AddReport)
				reports.GET("", r.authMiddleware.RequireAdmin(), r.reportHandler.GetAllReports)
				reports.GET("/:reportId", r.authMiddleware.RequireAdmin(), r.reportHandler.GetReportByID)
				reports.DELETE("/:reportId", r.authMiddleware.RequireAdmin(), r.reportHandler.DeleteReport)
			}

			// User administration
			users := protected.Group("/users")
			users.Use(r.authMiddleware.RequireAdmin())
			{
				users.GET("", r.authHandler.ListUsers)
				users.PUT("/:userId/verify", r.authHandler.VerifyUser)
			}
		}
	}

	return router
}
