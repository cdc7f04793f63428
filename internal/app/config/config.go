package config

import (
	"skinbloom-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "skinbloom"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "skinbloom-documents"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:               utils.GetEnvString("APP_ENV", "development"),
			Port:              utils.GetEnvString("APP_PORT", ":8080"),
			Version:           utils.GetEnvString("APP_VERSION", "v1"),
			Address:           utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:          utils.GetEnvString("APP_TIMEZONE", "Asia/Dhaka"),
			EndpointPrefix:    utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:       utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "skinbloom_notification_queue"),
			MeetingBaseUrl:    utils.GetEnvString("APP_MEETING_BASE_URL", "https://meet.skinbloom.app"),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:    utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.stripe.com"),
			SecretKey:  utils.GetEnvString("PAYMENT_GATEWAY_SECRET_KEY", ""),
			SuccessUrl: utils.GetEnvString("PAYMENT_GATEWAY_SUCCESS_URL", "https://skinbloom.app/payment/success"),
			CancelUrl:  utils.GetEnvString("PAYMENT_GATEWAY_CANCEL_URL", "https://skinbloom.app/payment/cancel"),
			Currency:   utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "usd"),
		},
		Fees: ConsultationFees{
			VideoCall: utils.GetEnvInt64("FEE_VIDEO_CALL", 100),
			FollowUp:  utils.GetEnvInt64("FEE_FOLLOW_UP", 30),
			Default:   utils.GetEnvInt64("FEE_DEFAULT", 50),
		},
	}
}
