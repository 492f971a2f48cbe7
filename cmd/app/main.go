package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/flavorrush/flavorrush-backend/internal/address"
	"github.com/flavorrush/flavorrush-backend/internal/banner"
	"github.com/flavorrush/flavorrush-backend/internal/cart"
	"github.com/flavorrush/flavorrush-backend/internal/category"
	"github.com/flavorrush/flavorrush-backend/internal/checkout"
	"github.com/flavorrush/flavorrush-backend/internal/config"
	"github.com/flavorrush/flavorrush-backend/internal/featured"
	"github.com/flavorrush/flavorrush-backend/internal/menu"
	"github.com/flavorrush/flavorrush-backend/internal/order"
	"github.com/flavorrush/flavorrush-backend/internal/payment"
	"github.com/flavorrush/flavorrush-backend/internal/restaurant"
	"github.com/flavorrush/flavorrush-backend/internal/review"
	"github.com/flavorrush/flavorrush-backend/internal/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// repos collects every repository behind its interface so the rest of main
// does not care whether we run against Postgres or in memory.
type repos struct {
	users       user.Repository
	carts       cart.Repository
	menus       menu.Repository
	restaurants restaurant.Repository
	orders      order.Repository
	addresses   address.Repository
	payments    payment.Repository
	reviews     review.Repository
	categories  category.Repository
	banners     banner.Repository
	featured    featured.Repository
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	var r repos
	if cfg.DatabaseURL == "" {
		// demo mode: everything lives in memory, pre-seeded so the
		// storefront works out of the box
		fmt.Println("DATABASE_URL not set, running with seeded in-memory stores")
		r = buildInMemoryRepos()
	} else {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		bootstrapSchema(db)
		seedDatabase(db)
		r = buildPostgresRepos(db)
	}

	// services
	userService := user.NewService(r.users)
	cartService := cart.NewService(r.carts)
	menuService := menu.NewService(r.menus)
	restaurantService := restaurant.NewService(r.restaurants)
	orderService := order.NewService(r.orders)
	addressService := address.NewService(r.addresses)
	paymentService := payment.NewService(r.payments)
	reviewService := review.NewService(r.reviews)
	categoryService := category.NewService(r.categories)
	bannerService := banner.NewService(r.banners)
	featuredService := featured.NewService(r.featured)

	orchestrator := checkout.NewOrchestrator(cartService, orderService, cfg.DeliveryFee, cfg.TaxRate, cfg.ProcessingDelay)

	// handlers
	userHandler := user.NewHandler(userService)
	cartHandler := cart.NewHandler(cartService, menuService, cfg.DeliveryFee, cfg.TaxRate)
	menuHandler := menu.NewHandler(menuService)
	restaurantHandler := restaurant.NewHandler(restaurantService)
	orderHandler := order.NewHandler(orderService)
	addressHandler := address.NewHandler(addressService)
	paymentHandler := payment.NewHandler(paymentService)
	reviewHandler := review.NewHandler(reviewService)
	categoryHandler := category.NewHandler(categoryService)
	bannerHandler := banner.NewHandler(bannerService)
	featuredHandler := featured.NewHandler(featuredService)
	checkoutHandler := checkout.NewHandler(orchestrator)

	// public routes first so they bypass the JWT middleware below
	userHandler.RegisterPublicRoutes(app)
	featuredHandler.RegisterPublicRoutes(app)
	restaurantHandler.RegisterPublicRoutes(app)
	menuHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	bannerHandler.RegisterPublicRoutes(app)

	app.Use(checkMiddleware)
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// browse endpoints stay readable without a token even when the
		// request falls through to this middleware
		Filter: func(c *fiber.Ctx) bool {
			if c.Method() != "GET" {
				return false
			}
			p := c.Path()
			for _, prefix := range []string{
				"/api/v1/restaurants",
				"/api/v1/restaurant/",
				"/api/v1/menu/",
				"/api/v1/categories",
				"/api/v1/banners",
			} {
				if strings.HasPrefix(p, prefix) {
					return true
				}
			}
			return false
		},
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)
	paymentHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	restaurantHandler.RegisterProtectedRoutes(app)
	menuHandler.RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func buildInMemoryRepos() repos {
	restaurantRepo := restaurant.NewInMemoryRepository(restaurant.SeedRestaurants())
	return repos{
		users:       user.NewInMemoryRepository(user.SeedUsers()),
		carts:       cart.NewInMemoryRepository(map[int]cart.Cart{1: cart.SeedCart()}),
		menus:       menu.NewInMemoryRepository(menu.SeedItems()),
		restaurants: restaurantRepo,
		orders:      order.NewInMemoryRepository(nil),
		addresses:   address.NewInMemoryRepository(address.SeedAddresses()),
		payments:    payment.NewInMemoryRepository(payment.SeedMethods()),
		reviews:     review.NewInMemoryRepository(review.SeedReviews()),
		categories:  category.NewInMemoryRepository(category.SeedCategories()),
		banners:     banner.NewInMemoryRepository(banner.SeedPromos()),
		featured:    featured.NewRestaurantRepository(restaurantRepo),
	}
}

func buildPostgresRepos(db *sql.DB) repos {
	return repos{
		users:       user.NewPostgresRepository(db),
		carts:       cart.NewPostgresRepository(db),
		menus:       menu.NewPostgresRepository(db),
		restaurants: restaurant.NewPostgresRepository(db),
		orders:      order.NewPostgresRepository(db),
		addresses:   address.NewPostgresRepository(db),
		payments:    payment.NewPostgresRepository(db),
		reviews:     review.NewPostgresRepository(db),
		categories:  category.NewPostgresRepository(db),
		banners:     banner.NewPostgresRepository(db),
		featured:    featured.NewPostgresRepository(db),
	}
}

// bootstrapSchema creates the tables the storefront needs. Statements are
// idempotent so restarting against an existing database is safe.
func bootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			user_name TEXT,
			phone TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			user_id INT PRIMARY KEY,
			items JSONB NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			item_id SERIAL PRIMARY KEY,
			restaurant_slug TEXT NOT NULL,
			category TEXT,
			item_name TEXT NOT NULL,
			item_desc TEXT,
			price NUMERIC NOT NULL DEFAULT 0,
			image_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			slug TEXT PRIMARY KEY,
			restaurant_name TEXT NOT NULL,
			image_url TEXT,
			cuisine TEXT,
			rating NUMERIC NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			delivery_time INT NOT NULL DEFAULT 0,
			address TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			order_number TEXT,
			user_id INT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			subtotal NUMERIC NOT NULL DEFAULT 0,
			delivery_fee NUMERIC NOT NULL DEFAULT 0,
			taxes NUMERIC NOT NULL DEFAULT 0,
			total NUMERIC NOT NULL DEFAULT 0,
			status TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS address (
			address_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			label TEXT,
			line TEXT,
			city TEXT,
			zip TEXT,
			is_default BOOLEAN NOT NULL DEFAULT false,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS payment_methods (
			method_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			brand TEXT,
			last4 TEXT,
			expiry TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			review_id SERIAL PRIMARY KEY,
			restaurant_slug TEXT NOT NULL,
			user_id INT NOT NULL,
			author TEXT,
			rating INT NOT NULL DEFAULT 0,
			comment TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			category_id SERIAL PRIMARY KEY,
			category_name TEXT,
			category_img TEXT,
			ord INT
		)`,
		`CREATE TABLE IF NOT EXISTS banner (
			banner_id SERIAL PRIMARY KEY,
			banner_img TEXT,
			headline TEXT,
			cta TEXT,
			banner_link TEXT,
			ord INT
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_admin (
			restaurant_id SERIAL PRIMARY KEY,
			slug TEXT,
			name TEXT,
			cuisine TEXT,
			image_url TEXT,
			rating NUMERIC NOT NULL DEFAULT 0,
			delivery_time INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP,
			updated_at TIMESTAMP
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}

// seedDatabase fills empty catalog tables so a fresh database serves a
// working storefront. User-owned tables are never seeded here.
func seedDatabase(db *sql.DB) {
	var count int

	if err := db.QueryRow(`SELECT COUNT(*) FROM restaurants`).Scan(&count); err == nil && count == 0 {
		for _, r := range restaurant.SeedRestaurants() {
			if _, err := db.Exec(
				`INSERT INTO restaurants (slug, restaurant_name, image_url, cuisine, rating, review_count, delivery_time, address) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
				r.Slug, r.Name, r.ImageURL, r.Cuisine, r.Rating, r.ReviewCount, r.DeliveryTime, r.Address,
			); err != nil {
				continue
			}
		}
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&count); err == nil && count == 0 {
		for _, it := range menu.SeedItems() {
			if _, err := db.Exec(
				`INSERT INTO menu_items (restaurant_slug, category, item_name, item_desc, price, image_url) VALUES ($1,$2,$3,$4,$5,$6)`,
				it.RestaurantSlug, it.Category, it.Name, it.Description, it.Price, it.ImageURL,
			); err != nil {
				continue
			}
		}
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err == nil && count == 0 {
		seed := category.SeedCategories()
		for i, c := range seed {
			img := ""
			if c.CategoryImg != nil {
				img = *c.CategoryImg
			}
			if _, err := db.Exec(
				`INSERT INTO categories (category_name, category_img, ord) VALUES ($1,$2,$3)`,
				c.CategoryName, img, len(seed)-i,
			); err != nil {
				continue
			}
		}
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM banner`).Scan(&count); err == nil && count == 0 {
		seed := banner.SeedPromos()
		for i, p := range seed {
			img, headline, cta, link := "", "", "", ""
			if p.ImageURL != nil {
				img = *p.ImageURL
			}
			if p.Headline != nil {
				headline = *p.Headline
			}
			if p.CTA != nil {
				cta = *p.CTA
			}
			if p.Link != nil {
				link = *p.Link
			}
			if _, err := db.Exec(
				`INSERT INTO banner (banner_img, headline, cta, banner_link, ord) VALUES ($1,$2,$3,$4,$5)`,
				img, headline, cta, link, len(seed)-i,
			); err != nil {
				continue
			}
		}
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err == nil && count == 0 {
		for _, u := range user.SeedUsers() {
			if _, err := db.Exec(
				`INSERT INTO users (email, password, user_name, phone, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6)`,
				u.Email, u.Password, u.Name, u.Phone, u.CreatedAt, u.UpdatedAt,
			); err != nil {
				continue
			}
		}
		// give the demo user a stocked cart
		if items, err := json.Marshal(cart.SeedCart().Items); err == nil {
			_, _ = db.Exec(`INSERT INTO carts (user_id, items) VALUES (1, $1) ON CONFLICT (user_id) DO NOTHING`, items)
		}
	}
}

func checkMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}
