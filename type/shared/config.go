package shared

type Config struct {
	Environment      *bool     `yaml:"environment" validate:"required"`
	Port             *string   `yaml:"port" validate:"required"`
	BackendURL       *string   `yaml:"backend_url" validate:"required"`
	Cors             []*string `yaml:"cors" validate:"required"`
	JWTSecret        *string   `yaml:"jwt_secret" validate:"required"`
	Postgres         *string   `yaml:"postgres" validate:"required"`
	Mongo            *string   `yaml:"mongo" validate:"required"`
	MongoDatabase    *string   `yaml:"mongo_database" validate:"required"`
	MinIoEndpoint    *string   `yaml:"minio_endpoint"`
	MinIoAccessKey   *string   `yaml:"minio_access_key"`
	MinIoSecretKey   *string   `yaml:"minio_secret_key"`
	BucketPass       *string   `yaml:"bucket_pass" validate:"required"`
	MailHost         *string   `yaml:"mail_host" validate:"required"`
	MailUser         *string   `yaml:"mail_user" validate:"required"`
	MailPass         *string   `yaml:"mail_pass" validate:"required"`
	PassTemplate     *string   `yaml:"pass_template" validate:"required"`
	PassFont         *string   `yaml:"pass_font" validate:"required"`
	StrictGeneration *bool     `yaml:"strict_generation"`
	GenerateLimit    *int      `yaml:"generate_limit"`
}
