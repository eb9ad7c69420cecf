// Package legacyimport pulls content out of a legacy MongoDB deployment and
// writes it into the relational store. It runs once, at startup, when the
// server is invoked with -import-mongo.
package legacyimport

import (
	"context"
	"time"

	"github.com/jasri-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type legacyProject struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Tags        []string           `bson:"tags"`
	ImageURL    string             `bson:"imageUrl"`
	Link        string             `bson:"link"`
	Category    string             `bson:"category"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type legacyFeed struct {
	ID        primitive.ObjectID `bson:"_id"`
	Type      string             `bson:"type"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	ImageURL  string             `bson:"imageUrl"`
	Link      string             `bson:"link"`
	Date      time.Time          `bson:"date"`
	Meta      models.FeedMeta    `bson:"meta"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type legacyMood struct {
	ID                 primitive.ObjectID   `bson:"_id"`
	Title              string               `bson:"title"`
	SourceURL          string               `bson:"sourceUrl"`
	SpotifyPlaylistURL string               `bson:"spotifyPlaylistUrl"`
	IsActive           bool                 `bson:"isActive"`
	Comments           []models.MoodComment `bson:"comments"`
	CreatedAt          time.Time            `bson:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt"`
}

type legacyProfile struct {
	ID          primitive.ObjectID  `bson:"_id"`
	Name        string              `bson:"name"`
	Title       string              `bson:"title"`
	Bio         string              `bson:"bio"`
	AvatarURL   string              `bson:"avatarUrl"`
	ResumeURL   string              `bson:"resumeUrl"`
	Email       string              `bson:"email"`
	SocialLinks []models.SocialLink `bson:"socialLinks"`
	HeroTitle   string              `bson:"heroTitle"`
	HeroImage   string              `bson:"heroImage"`
	BandImage   string              `bson:"bandImage"`
	Genres      string              `bson:"genres"`
	Quote       string              `bson:"quote"`
	IsActive    bool                `bson:"isActive"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

type legacyTrack struct {
	ID         primitive.ObjectID `bson:"_id"`
	Title      string             `bson:"title"`
	Artist     string             `bson:"artist"`
	AudioURL   string             `bson:"audioUrl"`
	CoverImage string             `bson:"coverImageUrl"`
	Duration   int                `bson:"duration"`
	Order      int                `bson:"order"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

type legacyCommandCenter struct {
	ID        primitive.ObjectID `bson:"_id"`
	Images    []string           `bson:"images"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type legacyActivity struct {
	ID            primitive.ObjectID `bson:"_id"`
	Action        string             `bson:"action"`
	ResourceType  string             `bson:"resourceType"`
	ResourceTitle string             `bson:"resourceTitle"`
	ResourceID    interface{}        `bson:"resourceId"` // string or ObjectID depending on era
	Timestamp     time.Time          `bson:"timestamp"`
}

func refString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case primitive.ObjectID:
		return t.Hex()
	default:
		return ""
	}
}

type legacyUser struct {
	ID        primitive.ObjectID `bson:"_id"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// Run connects to the legacy deployment and copies every collection into the
// relational store. Rows whose id already exists are left untouched, so the
// import is safe to re-run.
func Run(ctx context.Context, db *gorm.DB, mongoURI string, log *zap.Logger) error {
	log = log.Named("LegacyImport")

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	if err := client.Ping(connectCtx, nil); err != nil {
		return err
	}

	mdb := client.Database(databaseName(mongoURI))

	if err := importProjects(ctx, mdb, db, log); err != nil {
		return err
	}
	if err := importFeeds(ctx, mdb, db, log); err != nil {
		return err
	}
	if err := importMoods(ctx, mdb, db, log); err != nil {
		return err
	}
	if err := importProfiles(ctx, mdb, db, log); err != nil {
		return err
	}
	if err := importTracks(ctx, mdb, db, log); err != nil {
		return err
	}
	if err := importCommandCenters(ctx, mdb, db, log); err != nil {
		return err
	}
	if err := importActivityLogs(ctx, mdb, db, log); err != nil {
		return err
	}
	if err := importUsers(ctx, mdb, db, log); err != nil {
		return err
	}

	log.Info("import finished")
	return nil
}

// databaseName extracts the path component of the connection URI, falling
// back to the legacy default. Works for mongodb:// and mongodb+srv://.
func databaseName(uri string) string {
	start := -1
	depth := 0
	for i := 0; i < len(uri); i++ {
		switch uri[i] {
		case '/':
			depth++
			if depth == 3 {
				start = i + 1
			}
		case '?':
			if start >= 0 && i > start {
				return uri[start:i]
			}
		}
	}
	if start >= 0 && start < len(uri) {
		return uri[start:]
	}
	return "jasri-space"
}

func decodeAll[T any](ctx context.Context, mdb *mongo.Database, coll string) ([]T, error) {
	cur, err := mdb.Collection(coll).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// insertIgnoring writes rows with OnConflict DoNothing so re-imports skip
// already-migrated documents.
func insertIgnoring[T any](db *gorm.DB, rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	return res.RowsAffected, res.Error
}

func importProjects(ctx context.Context, mdb *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := decodeAll[legacyProject](ctx, mdb, "projects")
	if err != nil {
		return err
	}
	rows := make([]models.ProjectModel, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, models.ProjectModel{
			Base:        baseFrom(d.ID, d.CreatedAt, d.UpdatedAt),
			Title:       d.Title,
			Description: d.Description,
			Tags:        models.StringArray(d.Tags),
			ImageURL:    d.ImageURL,
			Link:        d.Link,
			Category:    d.Category,
		})
	}
	n, err := insertIgnoring(db, rows)
	if err != nil {
		return err
	}
	log.Info("imported projects", zap.Int("found", len(docs)), zap.Int64("inserted", n))
	return nil
}

func importFeeds(ctx context.Context, mdb *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := decodeAll[legacyFeed](ctx, mdb, "feeds")
	if err != nil {
		return err
	}
	rows := make([]models.FeedModel, 0, len(docs))
	for _, d := range docs {
		date := d.Date
		if date.IsZero() {
			date = d.CreatedAt
		}
		rows = append(rows, models.FeedModel{
			Base:     baseFrom(d.ID, d.CreatedAt, d.UpdatedAt),
			Type:     d.Type,
			Title:    d.Title,
			Content:  d.Content,
			ImageURL: d.ImageURL,
			Link:     d.Link,
			Date:     date,
			Meta:     d.Meta,
		})
	}
	n, err := insertIgnoring(db, rows)
	if err != nil {
		return err
	}
	log.Info("imported feeds", zap.Int("found", len(docs)), zap.Int64("inserted", n))
	return nil
}

func importMoods(ctx context.Context, mdb *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := decodeAll[legacyMood](ctx, mdb, "moods")
	if err != nil {
		return err
	}
	rows := make([]models.MoodModel, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, models.MoodModel{
			Base:               baseFrom(d.ID, d.CreatedAt, d.UpdatedAt),
			Title:              d.Title,
			SourceURL:          d.SourceURL,
			SpotifyPlaylistURL: d.SpotifyPlaylistURL,
			IsActive:           d.IsActive,
			Comments:           d.Comments,
		})
	}
	n, err := insertIgnoring(db, rows)
	if err != nil {
		return err
	}
	log.Info("imported moods", zap.Int("found", len(docs)), zap.Int64("inserted", n))
	return nil
}

func importProfiles(ctx context.Context, mdb *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := decodeAll[legacyProfile](ctx, mdb, "profiles")
	if err != nil {
		return err
	}
	rows := make([]models.ProfileModel, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, models.ProfileModel{
			Base:        baseFrom(d.ID, d.CreatedAt, d.UpdatedAt),
			Name:        d.Name,
			Title:       d.Title,
			Bio:         d.Bio,
			AvatarURL:   d.AvatarURL,
			ResumeURL:   d.ResumeURL,
			Email:       d.Email,
			SocialLinks: d.SocialLinks,
			HeroTitle:   d.HeroTitle,
			HeroImage:   d.HeroImage,
			BandImage:   d.BandImage,
			Genres:      d.Genres,
			Quote:       d.Quote,
			IsActive:    d.IsActive,
		})
	}
	n, err := insertIgnoring(db, rows)
	if err != nil {
		return err
	}
	log.Info("imported profiles", zap.Int("found", len(docs)), zap.Int64("inserted", n))
	return nil
}

func importTracks(ctx context.Context, mdb *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := decodeAll[legacyTrack](ctx, mdb, "tracks")
	if err != nil {
		return err
	}
	rows := make([]models.TrackModel, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, models.TrackModel{
			Base:       baseFrom(d.ID, d.CreatedAt, d.UpdatedAt),
			Title:      d.Title,
			Artist:     d.Artist,
			AudioURL:   d.AudioURL,
			CoverImage: d.CoverImage,
			Duration:   d.Duration,
			Order:      d.Order,
		})
	}
	n, err := insertIgnoring(db, rows)
	if err != nil {
		return err
	}
	log.Info("imported tracks", zap.Int("found", len(docs)), zap.Int64("inserted", n))
	return nil
}

func importCommandCenters(ctx context.Context, mdb *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := decodeAll[legacyCommandCenter](ctx, mdb, "commandcenters")
	if err != nil {
		return err
	}
	rows := make([]models.CommandCenterModel, 0, len(docs))
	for _, d := range docs {
		images := d.Images
		if len(images) > models.CommandCenterMaxImages {
			images = images[:models.CommandCenterMaxImages]
		}
		rows = append(rows, models.CommandCenterModel{
			Base:   baseFrom(d.ID, d.CreatedAt, d.UpdatedAt),
			Images: models.StringArray(images),
		})
	}
	n, err := insertIgnoring(db, rows)
	if err != nil {
		return err
	}
	log.Info("imported command centers", zap.Int("found", len(docs)), zap.Int64("inserted", n))
	return nil
}

func importActivityLogs(ctx context.Context, mdb *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := decodeAll[legacyActivity](ctx, mdb, "activitylogs")
	if err != nil {
		return err
	}
	rows := make([]models.ActivityLogModel, 0, len(docs))
	for _, d := range docs {
		ts := d.Timestamp
		if ts.IsZero() {
			ts = d.ID.Timestamp()
		}
		rows = append(rows, models.ActivityLogModel{
			Base:          baseFrom(d.ID, ts, ts),
			Action:        d.Action,
			ResourceType:  d.ResourceType,
			ResourceTitle: d.ResourceTitle,
			ResourceID:    refString(d.ResourceID),
			Timestamp:     ts,
		})
	}
	n, err := insertIgnoring(db, rows)
	if err != nil {
		return err
	}
	log.Info("imported activity logs", zap.Int("found", len(docs)), zap.Int64("inserted", n))
	return nil
}

func importUsers(ctx context.Context, mdb *mongo.Database, db *gorm.DB, log *zap.Logger) error {
	docs, err := decodeAll[legacyUser](ctx, mdb, "users")
	if err != nil {
		return err
	}
	rows := make([]models.UserModel, 0, len(docs))
	for _, d := range docs {
		// legacy hashes are bcrypt, so they keep working after the move
		rows = append(rows, models.UserModel{
			Base:     baseFrom(d.ID, d.CreatedAt, d.UpdatedAt),
			Username: d.Username,
			Email:    d.Email,
			Password: d.Password,
		})
	}
	n, err := insertIgnoring(db, rows)
	if err != nil {
		return err
	}
	log.Info("imported users", zap.Int("found", len(docs)), zap.Int64("inserted", n))
	return nil
}

func baseFrom(id primitive.ObjectID, created, updated time.Time) models.Base {
	if created.IsZero() {
		created = id.Timestamp()
	}
	if updated.IsZero() {
		updated = created
	}
	return models.Base{ID: id.Hex(), CreatedAt: created, UpdatedAt: updated}
}
