package global

// Process-wide handles shared by controllers and services.
import (
	"time"

	"github.com/go-redis/redis"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	DB      *gorm.DB
	RedisDB *redis.Client // nil when redis is not configured; callers must guard
	// Collapses concurrent identical catalog searches into one upstream call.
	FetchGroup   singleflight.Group
	FetchTimeout = 5 * time.Second
)
