package routes

import (
	"net/http"

	"postdeck/auth"
	"postdeck/controllers"
	"postdeck/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(r *gin.Engine, verifier auth.Verifier, postController *controllers.PostController) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running!")
	})

	posts := r.Group("/posts")
	posts.Use(middleware.AuthRequired(verifier))
	{
		posts.GET("", postController.ListPosts)
		posts.POST("", postController.CreatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
