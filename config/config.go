package config

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary inicializa el cliente de Cloudinary para subir imágenes
func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromParams(
		GetEnvDefault("CLOUDINARY_CLOUD", "arriendaya"),
		GetEnv("CLOUDINARY_KEY"),
		GetEnv("CLOUDINARY_SECRET"),
	)
	if err != nil {
		log.Fatalf("Error al inicializar Cloudinary: %v", err)
	}
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault devuelve la variable de entorno o el valor por defecto
func GetEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// BaseURL devuelve el origen del backend REST
func BaseURL() string {
	return GetEnvDefault("API_BASE_URL", "http://localhost:3001")
}

// IdentityAPIKey devuelve la API key del proveedor de identidad
func IdentityAPIKey() string {
	return GetEnv("IDENTITY_API_KEY")
}

// GeocodingURL devuelve el origen del servicio de geocodificación
func GeocodingURL() string {
	return GetEnvDefault("GEOCODING_URL", "https://nominatim.openstreetmap.org")
}
