package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ISudhan/cleannect-waste-management/config"
	"github.com/ISudhan/cleannect-waste-management/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire their dependencies from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoDB     *mongo.Database
	redisClient *redis.Client
	tokens      *helpers.TokenManager
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetMongo(db *mongo.Database)       { mongoDB = db }
func GetMongo() *mongo.Database         { return mongoDB }
func SetRedis(r *redis.Client)          { redisClient = r }
func GetRedis() *redis.Client           { return redisClient }
func SetTokens(m *helpers.TokenManager) { tokens = m }
func GetTokens() *helpers.TokenManager  { return tokens }
