package store

import (
	"Backend-EventEase/src/models"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the MongoDB-backed Store implementation. Writes go through
// this adapter only, so it can assign timestamps at write time and notify
// in-process subscribers with a fresh full snapshot after every write.
type MongoStore struct {
	participants *mongo.Collection
	volunteers   *mongo.Collection
	checkEvents  *mongo.Collection

	participantHub *hub[[]models.Participant]
	checkEventHub  *hub[[]models.CheckEvent]
	recentHub      *hub[[]models.CheckEvent]
}

// NewMongoStore สร้าง MongoStore จาก database ที่เชื่อมต่อแล้ว
func NewMongoStore(db *mongo.Database) *MongoStore {
	s := &MongoStore{
		participants:   db.Collection("participants"),
		volunteers:     db.Collection("volunteers"),
		checkEvents:    db.Collection("checkEvents"),
		participantHub: newHub[[]models.Participant](),
		checkEventHub:  newHub[[]models.CheckEvent](),
		recentHub:      newHub[[]models.CheckEvent](),
	}
	s.ensureIndexes()
	return s
}

// ensureIndexes สร้าง unique index กันการลงทะเบียนซ้ำที่หลุดจาก
// find-then-insert ตอนมี request พร้อมกัน
func (s *MongoStore) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.participants.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "collegeId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		log.Printf("⚠️ Failed to create participant indexes: %v", err)
	}
	if _, err := s.volunteers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		log.Printf("⚠️ Failed to create volunteer indexes: %v", err)
	}
}

// ---------- Participants ----------

func (s *MongoStore) InsertParticipant(ctx context.Context, p models.Participant) (models.Participant, error) {
	// เช็ค email / collegeId ซ้ำก่อน insert
	filter := bson.M{"$or": []bson.M{
		{"email": p.Email},
		{"collegeId": p.CollegeID},
	}}
	err := s.participants.FindOne(ctx, filter).Err()
	if err == nil {
		return models.Participant{}, ErrDuplicateRegistration
	}
	if err != mongo.ErrNoDocuments {
		return models.Participant{}, fmt.Errorf("duplicate check failed: %w", err)
	}

	p.ID = primitive.NewObjectID().Hex()
	if p.QRCode == "" {
		p.QRCode = p.ID
	}
	p.RegisteredAt = time.Now()
	p.CheckedIn = false

	if _, err := s.participants.InsertOne(ctx, p); err != nil {
		// unique index จับ insert ที่ชนกันหลังผ่าน duplicate check พร้อมกัน
		if mongo.IsDuplicateKeyError(err) {
			return models.Participant{}, ErrDuplicateRegistration
		}
		return models.Participant{}, fmt.Errorf("insert participant failed: %w", err)
	}

	s.notifyParticipants()
	return p, nil
}

func (s *MongoStore) FindParticipantByID(ctx context.Context, id string) (*models.Participant, error) {
	return s.findParticipant(ctx, bson.M{"_id": id})
}

func (s *MongoStore) FindParticipantByQRCode(ctx context.Context, qrCode string) (*models.Participant, error) {
	return s.findParticipant(ctx, bson.M{"qrCode": qrCode})
}

func (s *MongoStore) findParticipant(ctx context.Context, filter bson.M) (*models.Participant, error) {
	var p models.Participant
	err := s.participants.FindOne(ctx, filter).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find participant failed: %w", err)
	}
	return &p, nil
}

func (s *MongoStore) AllParticipants(ctx context.Context) ([]models.Participant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registeredAt", Value: -1}})
	cursor, err := s.participants.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find participants failed: %w", err)
	}
	defer cursor.Close(ctx)

	participants := []models.Participant{}
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, fmt.Errorf("decode participants failed: %w", err)
	}
	return participants, nil
}

func (s *MongoStore) SetParticipantCheckedIn(ctx context.Context, id string, checkedIn bool) error {
	result, err := s.participants.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"checkedIn": checkedIn}})
	if err != nil {
		return fmt.Errorf("update participant failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	s.notifyParticipants()
	return nil
}

// ---------- Volunteers ----------

func (s *MongoStore) InsertVolunteer(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	err := s.volunteers.FindOne(ctx, bson.M{"email": v.Email}).Err()
	if err == nil {
		return models.Volunteer{}, ErrDuplicateRegistration
	}
	if err != mongo.ErrNoDocuments {
		return models.Volunteer{}, fmt.Errorf("duplicate check failed: %w", err)
	}

	v.ID = primitive.NewObjectID().Hex()
	v.RegisteredAt = time.Now()

	if _, err := s.volunteers.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Volunteer{}, ErrDuplicateRegistration
		}
		return models.Volunteer{}, fmt.Errorf("insert volunteer failed: %w", err)
	}
	return v, nil
}

func (s *MongoStore) FindVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error) {
	return s.findVolunteer(ctx, bson.M{"_id": id})
}

func (s *MongoStore) FindVolunteerByEmail(ctx context.Context, email string) (*models.Volunteer, error) {
	return s.findVolunteer(ctx, bson.M{"email": email})
}

func (s *MongoStore) findVolunteer(ctx context.Context, filter bson.M) (*models.Volunteer, error) {
	var v models.Volunteer
	err := s.volunteers.FindOne(ctx, filter).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find volunteer failed: %w", err)
	}
	return &v, nil
}

func (s *MongoStore) AllVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registeredAt", Value: -1}})
	cursor, err := s.volunteers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find volunteers failed: %w", err)
	}
	defer cursor.Close(ctx)

	volunteers := []models.Volunteer{}
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, fmt.Errorf("decode volunteers failed: %w", err)
	}
	return volunteers, nil
}

func (s *MongoStore) TouchVolunteerLogin(ctx context.Context, id string) error {
	result, err := s.volunteers.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"lastLogin": time.Now()}})
	if err != nil {
		return fmt.Errorf("update volunteer failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- CheckEvents ----------

func (s *MongoStore) AppendCheckEvent(ctx context.Context, ev models.CheckEvent) (models.CheckEvent, error) {
	ev.ID = primitive.NewObjectID().Hex()
	ev.At = time.Now() // store กำหนด timestamp ตอนเขียน ไม่รับค่าจาก client

	if _, err := s.checkEvents.InsertOne(ctx, ev); err != nil {
		return models.CheckEvent{}, fmt.Errorf("append check event failed: %w", err)
	}

	s.notifyCheckEvents()
	return ev, nil
}

func (s *MongoStore) CheckEventsForParticipant(ctx context.Context, participantID string) ([]models.CheckEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.checkEvents.Find(ctx, bson.M{"participantId": participantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find check events failed: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.CheckEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode check events failed: %w", err)
	}
	return events, nil
}

func (s *MongoStore) RecentCheckIns(ctx context.Context, limit int) ([]models.CheckEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.checkEvents.Find(ctx, bson.M{"kind": models.EventCheckIn}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent check-ins failed: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.CheckEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode recent check-ins failed: %w", err)
	}
	return events, nil
}

func (s *MongoStore) AllCheckEvents(ctx context.Context) ([]models.CheckEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.checkEvents.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find check events failed: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.CheckEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode check events failed: %w", err)
	}
	return events, nil
}

// ---------- Subscriptions ----------

// Each Subscribe registers the listener before the initial fetch so a write
// landing during the fetch still fires to it. A failed initial fetch releases
// the registration and reports the store as unavailable; the caller decides
// whether to retry.

func (s *MongoStore) SubscribeParticipants(fn func([]models.Participant)) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	unsubscribe := s.participantHub.subscribe(fn)
	snapshot, err := s.AllParticipants(ctx)
	if err != nil {
		unsubscribe()
		log.Printf("⚠️ Initial participant snapshot failed: %v", err)
		return nil, fmt.Errorf("initial participant snapshot: %w", ErrUnavailable)
	}
	fn(snapshot)
	return unsubscribe, nil
}

func (s *MongoStore) SubscribeCheckEvents(fn func([]models.CheckEvent)) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	unsubscribe := s.checkEventHub.subscribe(fn)
	snapshot, err := s.AllCheckEvents(ctx)
	if err != nil {
		unsubscribe()
		log.Printf("⚠️ Initial check event snapshot failed: %v", err)
		return nil, fmt.Errorf("initial check event snapshot: %w", ErrUnavailable)
	}
	fn(snapshot)
	return unsubscribe, nil
}

func (s *MongoStore) SubscribeRecentCheckIns(fn func([]models.CheckEvent)) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	unsubscribe := s.recentHub.subscribe(fn)
	snapshot, err := s.RecentCheckIns(ctx, RecentCheckInsLimit)
	if err != nil {
		unsubscribe()
		log.Printf("⚠️ Initial recent check-ins snapshot failed: %v", err)
		return nil, fmt.Errorf("initial recent check-ins snapshot: %w", ErrUnavailable)
	}
	fn(snapshot)
	return unsubscribe, nil
}

// notifyParticipants ดึง snapshot ล่าสุดแล้วกระจายให้ subscriber
func (s *MongoStore) notifyParticipants() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snapshot, err := s.AllParticipants(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to refresh participant snapshot: %v", err)
		return
	}
	s.participantHub.fire(snapshot)
}

func (s *MongoStore) notifyCheckEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := s.AllCheckEvents(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to refresh check event snapshot: %v", err)
		return
	}
	recent, err := s.RecentCheckIns(ctx, RecentCheckInsLimit)
	if err != nil {
		log.Printf("⚠️ Failed to refresh recent check-ins: %v", err)
		return
	}
	s.checkEventHub.fire(events)
	s.recentHub.fire(recent)
}
