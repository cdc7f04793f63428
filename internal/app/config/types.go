package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
		Fees           ConsultationFees
	}

	App struct {
		Env               string
		Port              string
		Version           string
		Address           string
		Timezone          string
		EndpointPrefix    string
		MaxRequests       int
		ShutdownTimeout   int
		NotificationQueue string
		MeetingBaseUrl    string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret string
	}

	PaymentGateway struct {
		BaseUrl    string
		SecretKey  string
		SuccessUrl string
		CancelUrl  string
		Currency   string
	}

	// ConsultationFees is the single shared fee table injected into both the
	// ticket and booking workflows. Per-dermatologist overrides take
	// precedence; these are the platform-wide defaults.
	ConsultationFees struct {
		VideoCall int64
		FollowUp  int64
		Default   int64
	}
)

// FeeFor resolves the platform fee for a session type.
func (f ConsultationFees) FeeFor(sessionType string) int64 {
	switch sessionType {
	case "video_call":
		return f.VideoCall
	case "follow_up":
		return f.FollowUp
	default:
		return f.Default
	}
}
