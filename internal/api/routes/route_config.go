package routes

import (
	"github.com/gofiber/fiber/v2"

	"recipebox/internal/api/handlers"
	"recipebox/internal/middleware"
	"recipebox/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	LookupHandler     handlers.LookupHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Ingredients()
	c.Lookups()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/v1/recipes")

	// static paths before "/:id"
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/search", c.RecipeHandler.SearchRecipes)
	recipes.Get("/ingredient-search", c.RecipeHandler.SearchRecipesByIngredient)
	recipes.Get("/export", c.RecipeHandler.ExportRecipes)
	recipes.Get("/mine", auth, c.RecipeHandler.GetMyRecipes)
	recipes.Get("/bookmarks", auth, c.RecipeHandler.GetSavedRecipes)

	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)

	recipes.Post("/:id/save", auth, c.RecipeHandler.SaveRecipe)
	recipes.Delete("/saved/:id", auth, c.RecipeHandler.UnsaveRecipe)

	recipes.Post("/:id/quantities", auth, c.IngredientHandler.AddQuantity)
	recipes.Post("/:id/methods", auth, c.IngredientHandler.AddMethod)
}

func (c *Config) Ingredients() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	quantities := c.App.Group("/api/v1/quantities", auth)
	quantities.Put("/:id", c.IngredientHandler.UpdateQuantity)
	quantities.Delete("/:id", c.IngredientHandler.DeleteQuantity)

	methods := c.App.Group("/api/v1/methods", auth)
	methods.Put("/:id", c.IngredientHandler.UpdateMethod)
	methods.Delete("/:id", c.IngredientHandler.DeleteMethod)
}

func (c *Config) Lookups() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	lookups := c.App.Group("/api/v1/lookups")

	lookups.Get("", c.LookupHandler.GetStaticData)

	lookups.Post("/categories", auth, c.LookupHandler.AddCategory)
	lookups.Put("/categories/:id", auth, c.LookupHandler.UpdateCategory)
	lookups.Post("/courses", auth, c.LookupHandler.AddCourse)
	lookups.Put("/courses/:id", auth, c.LookupHandler.UpdateCourse)
	lookups.Post("/cuisines", auth, c.LookupHandler.AddCuisine)
	lookups.Put("/cuisines/:id", auth, c.LookupHandler.UpdateCuisine)
	lookups.Post("/countries", auth, c.LookupHandler.AddCountry)
	lookups.Put("/countries/:id", auth, c.LookupHandler.UpdateCountry)
	lookups.Post("/measurements", auth, c.LookupHandler.AddMeasurement)
	lookups.Put("/measurements/:id", auth, c.LookupHandler.UpdateMeasurement)
	lookups.Post("/authors", auth, c.LookupHandler.AddAuthor)
	lookups.Put("/authors/:id", auth, c.LookupHandler.UpdateAuthor)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
