package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tablebook/internal/database"
	"tablebook/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tablebook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM commissions")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM tables")
	db.Exec("DELETE FROM restaurants")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@tablebook.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Platform Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@tablebook.io / admin123")

	customers := make([]domain.User, 0, 3)
	for i, email := range []string{"alice@example.com", "bob@example.com", "carol@example.com"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		c := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			Name:         fmt.Sprintf("Customer %d", i+1),
			Phone:        fmt.Sprintf("+1 555 010 00%02d", i+1),
		}
		db.Create(&c)
		customers = append(customers, c)
	}

	vendors := make([]domain.User, 0, 2)
	for i, email := range []string{"marco@trattoria.example", "yuki@izakaya.example"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("vendor123"), bcrypt.DefaultCost)
		v := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleVendor,
			Name:         fmt.Sprintf("Vendor %d", i+1),
		}
		db.Create(&v)
		vendors = append(vendors, v)
	}

	log.Println("Creating restaurants...")
	restaurants := []domain.Restaurant{
		{
			OwnerID:     vendors[0].ID,
			Name:        "Trattoria Marco",
			Description: "Family-run Italian kitchen",
			Address:     "12 Harbor St",
			City:        "Portland",
			OpeningTime: "10:00",
			ClosingTime: "22:00",
			IsActive:    true,
		},
		{
			OwnerID:     vendors[1].ID,
			Name:        "Izakaya Yuki",
			Description: "Small plates and sake",
			Address:     "88 Pine Ave",
			City:        "Seattle",
			OpeningTime: "17:00",
			ClosingTime: "23:30",
			IsActive:    true,
		},
		{
			OwnerID:     vendors[0].ID,
			Name:        "Marco Express",
			Description: "Lunch counter, opening soon",
			Address:     "3 Market Sq",
			City:        "Portland",
			OpeningTime: "11:00",
			ClosingTime: "15:00",
			IsActive:    false,
		},
	}
	for i := range restaurants {
		db.Create(&restaurants[i])
	}

	log.Println("Creating tables...")
	for _, r := range restaurants {
		for j, cap := range []int{2, 2, 4, 4, 6, 8} {
			t := domain.Table{
				RestaurantID: r.ID,
				Label:        fmt.Sprintf("T%d", j+1),
				Capacity:     cap,
				IsAvailable:  true,
			}
			db.Create(&t)
		}
	}

	log.Println("Creating reservations...")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	var firstTable domain.Table
	db.Where("restaurant_id = ?", restaurants[0].ID).Order("id ASC").First(&firstTable)

	db.Create(&domain.Reservation{
		CustomerID:    customers[0].ID,
		RestaurantID:  restaurants[0].ID,
		TableID:       firstTable.ID,
		Date:          tomorrow,
		SlotMinutes:   19 * 60, // 19:00
		PartySize:     2,
		Status:        domain.ReservationConfirmed,
		PaymentStatus: domain.PaymentUnpaid,
		SpecialNotes:  "Window seat if possible",
	})

	log.Println("Seed completed")
	log.Println("Admin:     admin@tablebook.io / admin123")
	log.Println("Customers: alice|bob|carol@example.com / customer123")
	log.Println("Vendors:   marco@trattoria.example, yuki@izakaya.example / vendor123")
}
