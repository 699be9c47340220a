package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"cinescope-service/internal/model"
)

// ErrNotFound is returned when a requested document does not exist
var ErrNotFound = errors.New("document not found")

// ErrEmailTaken is returned when registering an already-used email
var ErrEmailTaken = errors.New("email already registered")

// Publisher receives change notifications for a user's live views
type Publisher interface {
	Publish(userID, event string, data interface{})
}

// Events published on document mutations
const (
	EventWatchlistAdded   = "watchlist:added"
	EventWatchlistRemoved = "watchlist:removed"
	EventRatingUpdated    = "rating:updated"
)

// DocumentStore holds per-user account documents in MongoDB: profile
// fields plus the watchlist, ratings and reviews sub-collections.
// Mutations to watchlist and ratings are pushed to the Publisher so
// open views update without re-fetching.
type DocumentStore struct {
	client *mongo.Client
	db     *mongo.Database
	pub    Publisher
}

// NewDocumentStore connects to MongoDB and returns a DocumentStore
func NewDocumentStore(uri, database string, pub Publisher) (*DocumentStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DocumentStore{
		client: client,
		db:     client.Database(database),
		pub:    pub,
	}, nil
}

// Close disconnects from MongoDB
func (s *DocumentStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ================== Users ==================

type userDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	DisplayName  string    `bson:"display_name"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

// CreateUser registers a new account. Emails are unique.
func (s *DocumentStore) CreateUser(ctx context.Context, email, displayName, passwordHash string) (model.User, error) {
	users := s.db.Collection("users")

	err := users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return model.User{}, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	doc := userDoc{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := users.InsertOne(ctx, doc); err != nil {
		return model.User{}, fmt.Errorf("user insert failed: %w", err)
	}
	return userFromDoc(doc), nil
}

// UserByEmail finds an account by email
func (s *DocumentStore) UserByEmail(ctx context.Context, email string) (model.User, error) {
	var doc userDoc
	err := s.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return userFromDoc(doc), nil
}

// UserByID finds an account by id
func (s *DocumentStore) UserByID(ctx context.Context, id string) (model.User, error) {
	var doc userDoc
	err := s.db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return userFromDoc(doc), nil
}

func userFromDoc(doc userDoc) model.User {
	return model.User{
		ID:           doc.ID,
		Email:        doc.Email,
		DisplayName:  doc.DisplayName,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}
}

// ================== Profile ==================

type profileDoc struct {
	ID             string `bson:"_id"`
	Username       string `bson:"username"`
	ProfilePicture string `bson:"profile_picture"`
	Preferences    string `bson:"preferences"`
}

// GetProfile returns the user's profile document; a user who never
// saved one gets the zero profile
func (s *DocumentStore) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	var doc profileDoc
	err := s.db.Collection("profiles").FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Profile{}, nil
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	return model.Profile{
		Username:       doc.Username,
		ProfilePicture: doc.ProfilePicture,
		Preferences:    doc.Preferences,
	}, nil
}

// UpsertProfile merges the given fields into the user's profile
func (s *DocumentStore) UpsertProfile(ctx context.Context, userID string, profile model.Profile) error {
	update := bson.M{"$set": bson.M{
		"username":        profile.Username,
		"profile_picture": profile.ProfilePicture,
		"preferences":     profile.Preferences,
	}}
	_, err := s.db.Collection("profiles").UpdateOne(ctx, bson.M{"_id": userID}, update,
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("profile upsert failed: %w", err)
	}
	return nil
}

// ================== Watchlist ==================

type watchlistDoc struct {
	ID          string   `bson:"_id"`
	UserID      string   `bson:"user_id"`
	MovieID     int      `bson:"movie_id"`
	Title       string   `bson:"title"`
	ReleaseDate string   `bson:"release_date"`
	Genres      []string `bson:"genres"`
	PosterPath  string   `bson:"poster_path"`
}

// AddWatchlistEntry appends a title to the user's watchlist
func (s *DocumentStore) AddWatchlistEntry(ctx context.Context, userID string, entry model.WatchlistEntry) (model.WatchlistEntry, error) {
	entry.ID = uuid.NewString()
	doc := watchlistDoc{
		ID:          entry.ID,
		UserID:      userID,
		MovieID:     entry.MovieID,
		Title:       entry.Title,
		ReleaseDate: entry.ReleaseDate,
		Genres:      entry.Genres,
		PosterPath:  entry.PosterPath,
	}
	if _, err := s.db.Collection("watchlist").InsertOne(ctx, doc); err != nil {
		return model.WatchlistEntry{}, fmt.Errorf("watchlist insert failed: %w", err)
	}

	s.publish(userID, EventWatchlistAdded, entry)
	return entry, nil
}

// ListWatchlist returns the user's watchlist entries
func (s *DocumentStore) ListWatchlist(ctx context.Context, userID string) ([]model.WatchlistEntry, error) {
	cursor, err := s.db.Collection("watchlist").Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("watchlist query failed: %w", err)
	}

	var docs []watchlistDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("watchlist decode failed: %w", err)
	}

	entries := make([]model.WatchlistEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, model.WatchlistEntry{
			ID:          doc.ID,
			MovieID:     doc.MovieID,
			Title:       doc.Title,
			ReleaseDate: doc.ReleaseDate,
			Genres:      doc.Genres,
			PosterPath:  doc.PosterPath,
		})
	}
	return entries, nil
}

// RemoveWatchlistEntry deletes one watchlist entry by id
func (s *DocumentStore) RemoveWatchlistEntry(ctx context.Context, userID, entryID string) error {
	result, err := s.db.Collection("watchlist").DeleteOne(ctx, bson.M{"_id": entryID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("watchlist delete failed: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	s.publish(userID, EventWatchlistRemoved, map[string]string{"id": entryID})
	return nil
}

// ================== Ratings ==================

type ratingDoc struct {
	ID         string    `bson:"_id"` // userID:movieID
	UserID     string    `bson:"user_id"`
	MovieID    int       `bson:"movie_id"`
	Title      string    `bson:"title"`
	PosterPath string    `bson:"poster_path"`
	Rating     float64   `bson:"rating"`
	Timestamp  time.Time `bson:"timestamp"`
}

// UpsertRating stores the user's rating for one title. One rating per
// title; re-submitting overwrites (last write wins).
func (s *DocumentStore) UpsertRating(ctx context.Context, userID string, entry model.RatingEntry) error {
	entry.Timestamp = time.Now().UTC()
	doc := ratingDoc{
		ID:         fmt.Sprintf("%s:%d", userID, entry.MovieID),
		UserID:     userID,
		MovieID:    entry.MovieID,
		Title:      entry.Title,
		PosterPath: entry.PosterPath,
		Rating:     entry.Rating,
		Timestamp:  entry.Timestamp,
	}
	_, err := s.db.Collection("ratings").ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("rating upsert failed: %w", err)
	}

	s.publish(userID, EventRatingUpdated, entry)
	return nil
}

// ListRatings returns the user's ratings
func (s *DocumentStore) ListRatings(ctx context.Context, userID string) ([]model.RatingEntry, error) {
	cursor, err := s.db.Collection("ratings").Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("ratings query failed: %w", err)
	}

	var docs []ratingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("ratings decode failed: %w", err)
	}

	entries := make([]model.RatingEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, model.RatingEntry{
			MovieID:    doc.MovieID,
			Title:      doc.Title,
			PosterPath: doc.PosterPath,
			Rating:     doc.Rating,
			Timestamp:  doc.Timestamp,
		})
	}
	return entries, nil
}

// ================== Reviews ==================

type reviewDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Author    string    `bson:"author"`
	Content   string    `bson:"content"`
	Title     string    `bson:"title"`
	Timestamp time.Time `bson:"timestamp"`
}

// AddReview stores a free-form review with a server-assigned timestamp
func (s *DocumentStore) AddReview(ctx context.Context, userID string, review model.UserReview) (model.UserReview, error) {
	review.ID = uuid.NewString()
	review.Timestamp = time.Now().UTC()
	doc := reviewDoc{
		ID:        review.ID,
		UserID:    userID,
		Author:    review.Author,
		Content:   review.Content,
		Title:     review.Title,
		Timestamp: review.Timestamp,
	}
	if _, err := s.db.Collection("reviews").InsertOne(ctx, doc); err != nil {
		return model.UserReview{}, fmt.Errorf("review insert failed: %w", err)
	}
	return review, nil
}

// ListReviews returns the user's reviews, newest first
func (s *DocumentStore) ListReviews(ctx context.Context, userID string) ([]model.UserReview, error) {
	cursor, err := s.db.Collection("reviews").Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("reviews query failed: %w", err)
	}

	var docs []reviewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("reviews decode failed: %w", err)
	}

	reviews := make([]model.UserReview, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, model.UserReview{
			ID:        doc.ID,
			Author:    doc.Author,
			Content:   doc.Content,
			Title:     doc.Title,
			Timestamp: doc.Timestamp,
		})
	}
	return reviews, nil
}

func (s *DocumentStore) publish(userID, event string, data interface{}) {
	if s.pub != nil {
		s.pub.Publish(userID, event, data)
	}
}
