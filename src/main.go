package main

import (
	"Backend-EventEase/src/controllers"
	"Backend-EventEase/src/database"
	"Backend-EventEase/src/jobs"
	"Backend-EventEase/src/routes"
	"Backend-EventEase/src/services/auth"
	"Backend-EventEase/src/services/checkin"
	"Backend-EventEase/src/services/exports"
	"Backend-EventEase/src/services/participants"
	"Backend-EventEase/src/services/stats"
	"Backend-EventEase/src/services/volunteers"
	"Backend-EventEase/src/store"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
)

func main() {

	// โหลดค่า Environment Variables จากไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	// เลือก store ตามการตั้งค่า: MongoDB หรือ in-memory (demo mode)
	var st store.Store
	if database.IsMongoConfigured() {
		db, err := database.ConnectMongoDB()
		if err != nil {
			log.Fatalf("❌ Error connecting to the database: %v", err)
		}
		st = store.NewMongoStore(db)
	} else {
		log.Println("⚠️ MONGO_URI not set. Running in demo mode with in-memory store.")
		mem := store.NewMemoryStore()
		mem.SeedDemoData()
		st = mem
	}

	database.InitRedis()
	database.InitAsynq()

	// สร้าง services ทั้งหมดจาก store เดียวกัน
	participantService := participants.NewService(st)
	volunteerService := volunteers.NewService(st)
	checkinService := checkin.NewService(st)
	statsService := stats.NewService(st)
	exportService := exports.NewService(st)
	authService := auth.NewService(volunteerService)

	controllers.Init(participantService, volunteerService, checkinService, statsService, exportService, authService)

	// background job: reconcile cache flag กับ event log
	jobs.StartWorker(st)

	// สร้าง app instance
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}
}
