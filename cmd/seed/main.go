package main

import (
	"context"
	"log"
	"os"
	"time"

	"concierge/internal/database"
	"concierge/internal/domain"
	"concierge/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "concierge.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM expenses")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM service_requests")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM service_providers")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	services := repository.NewServiceRepository(db)
	providers := repository.NewProviderRepository(db)
	properties := repository.NewPropertyRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@maison-des-sables.fr",
		PasswordHash: string(adminHash),
		FirstName:    "Sophie",
		LastName:     "Martin",
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("admin seed failed:", err)
	}
	log.Println("Admin created: admin@maison-des-sables.fr / admin123")

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	client := &domain.User{
		Email:        "marie.dubois@example.com",
		PasswordHash: string(clientHash),
		FirstName:    "Marie",
		LastName:     "Dubois",
		Phone:        "+33 6 12 34 56 78",
		Role:         domain.RoleClient,
	}
	if err := users.Create(ctx, client); err != nil {
		log.Fatal("client seed failed:", err)
	}
	log.Println("Client created: marie.dubois@example.com / client123")

	// ================== CATALOGUE ==================
	log.Println("Creating services...")
	starters := []*domain.Service{
		{Name: "Ménage complet", Description: "Nettoyage complet de la résidence avant arrivée", Price: 120, DurationEstimate: "3h", IsActive: true},
		{Name: "Entretien piscine", Description: "Traitement de l'eau et nettoyage du bassin", Price: 90, DurationEstimate: "1h30", IsActive: true},
		{Name: "Jardinage", Description: "Tonte, taille et arrosage", Price: 150, DurationEstimate: "4h", IsActive: true},
		{Name: "Gestion des clés", Description: "Remise des clés aux locataires et état des lieux", Price: 60, DurationEstimate: "1h", IsActive: true},
	}
	for _, s := range starters {
		if err := services.Create(ctx, s); err != nil {
			log.Fatal("service seed failed:", err)
		}
	}

	log.Println("Creating providers...")
	crew := []*domain.ServiceProvider{
		{Name: "Paul Piscine", Speciality: "Piscines", ContactEmail: "paul@piscines-landes.fr", ContactPhone: "+33 6 98 76 54 32", IsActive: true},
		{Name: "Les Jardins d'Hossegor", Speciality: "Jardinage", ContactEmail: "contact@jardins-hossegor.fr", IsActive: true},
	}
	for _, p := range crew {
		if err := providers.Create(ctx, p); err != nil {
			log.Fatal("provider seed failed:", err)
		}
	}

	log.Println("Creating a sample property...")
	if err := properties.Create(ctx, &domain.Property{
		OwnerID:  client.ID,
		Address:  "12 avenue de la Dune, Hossegor",
		Surface:  140,
		NumRooms: 5,
		IsActive: true,
	}); err != nil {
		log.Fatal("property seed failed:", err)
	}

	log.Println("Seed finished at", time.Now().Format(time.RFC3339))
}
