package service

import (
	"context"
	"io"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/port-russell/marina-api/config"
	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
)

// In-memory repositories backing the service tests. They mirror the
// repository error contract without a MongoDB connection.

type fakeUserRepo struct {
	users map[string]*repository.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*repository.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *repository.User) (*repository.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return nil, repository.ErrEmailTaken
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	r.users[user.Email] = &stored
	out := stored
	return &out, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*repository.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*repository.User, error) {
	users := make([]*repository.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (r *fakeUserRepo) UpdateByEmail(_ context.Context, email string, fields repository.UserUpdate) (*repository.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if fields.Username != "" {
		user.Username = fields.Username
	}
	if fields.Password != "" {
		user.Password = fields.Password
	}
	return user, nil
}

func (r *fakeUserRepo) DeleteByEmail(_ context.Context, email string) error {
	if _, ok := r.users[email]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, email)
	return nil
}

type fakeCatwayRepo struct {
	catways map[int]*repository.Catway
}

func newFakeCatwayRepo() *fakeCatwayRepo {
	return &fakeCatwayRepo{catways: make(map[int]*repository.Catway)}
}

func (r *fakeCatwayRepo) Create(_ context.Context, catway *repository.Catway) (*repository.Catway, error) {
	if _, ok := r.catways[catway.CatwayNumber]; ok {
		return nil, repository.ErrCatwayNumberTaken
	}
	stored := *catway
	stored.ID = primitive.NewObjectID()
	r.catways[catway.CatwayNumber] = &stored
	return &stored, nil
}

func (r *fakeCatwayRepo) FindByNumber(_ context.Context, number int) (*repository.Catway, error) {
	catway, ok := r.catways[number]
	if !ok {
		return nil, repository.ErrCatwayNotFound
	}
	return catway, nil
}

func (r *fakeCatwayRepo) List(_ context.Context) ([]*repository.Catway, error) {
	catways := make([]*repository.Catway, 0, len(r.catways))
	for _, c := range r.catways {
		catways = append(catways, c)
	}
	sort.Slice(catways, func(i, j int) bool { return catways[i].CatwayNumber < catways[j].CatwayNumber })
	return catways, nil
}

func (r *fakeCatwayRepo) UpdateState(_ context.Context, number int, state string) (*repository.Catway, error) {
	catway, ok := r.catways[number]
	if !ok {
		return nil, repository.ErrCatwayNotFound
	}
	catway.CatwayState = state
	return catway, nil
}

func (r *fakeCatwayRepo) DeleteByNumber(_ context.Context, number int) error {
	if _, ok := r.catways[number]; !ok {
		return repository.ErrCatwayNotFound
	}
	delete(r.catways, number)
	return nil
}

func (r *fakeCatwayRepo) DeleteAll(_ context.Context) error {
	r.catways = make(map[int]*repository.Catway)
	return nil
}

func (r *fakeCatwayRepo) InsertMany(_ context.Context, catways []*repository.Catway) error {
	for _, c := range catways {
		if _, err := r.Create(context.Background(), c); err != nil {
			return err
		}
	}
	return nil
}

type fakeReservationRepo struct {
	reservations map[string]*repository.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*repository.Reservation)}
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation *repository.Reservation) (*repository.Reservation, error) {
	stored := *reservation
	stored.ID = primitive.NewObjectID()
	r.reservations[stored.ID.Hex()] = &stored
	return &stored, nil
}

func (r *fakeReservationRepo) FindByCatway(_ context.Context, catwayNumber int) ([]*repository.Reservation, error) {
	var out []*repository.Reservation
	for _, res := range r.reservations {
		if res.CatwayNumber == catwayNumber {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) lookup(catwayNumber int, id string) (*repository.Reservation, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrReservationNotFound
	}
	res, ok := r.reservations[id]
	if !ok || res.CatwayNumber != catwayNumber {
		return nil, repository.ErrReservationNotFound
	}
	return res, nil
}

func (r *fakeReservationRepo) FindOne(_ context.Context, catwayNumber int, id string) (*repository.Reservation, error) {
	return r.lookup(catwayNumber, id)
}

func (r *fakeReservationRepo) Replace(_ context.Context, catwayNumber int, id string, fields repository.ReservationUpdate) (*repository.Reservation, error) {
	res, err := r.lookup(catwayNumber, id)
	if err != nil {
		return nil, err
	}
	res.ClientName = fields.ClientName
	res.BoatName = fields.BoatName
	res.StartDate = fields.StartDate
	res.EndDate = fields.EndDate
	return res, nil
}

func (r *fakeReservationRepo) Delete(_ context.Context, catwayNumber int, id string) error {
	if _, err := r.lookup(catwayNumber, id); err != nil {
		return err
	}
	delete(r.reservations, id)
	return nil
}

func (r *fakeReservationRepo) DeleteAll(_ context.Context) error {
	r.reservations = make(map[string]*repository.Reservation)
	return nil
}

func (r *fakeReservationRepo) InsertMany(_ context.Context, reservations []*repository.Reservation) error {
	for _, res := range reservations {
		if _, err := r.Create(context.Background(), res); err != nil {
			return err
		}
	}
	return nil
}

func newTestLogger() *logger.Logger {
	log := logger.StandardLogger()
	log.SetOutput(io.Discard)
	return log
}

func newTestConfig() *config.Config {
	return &config.Config{
		AppName: "marina-api",
		Auth:    &config.Auth{JWT: &config.JWT{Secret: "test-secret", Expire: 60}},
		Admin:   &config.Admin{Email: "admin@exemple.com", Username: "Admin", Password: "test1234"},
	}
}

func newTestData() *data.Data {
	return &data.Data{
		UserRepo:        newFakeUserRepo(),
		CatwayRepo:      newFakeCatwayRepo(),
		ReservationRepo: newFakeReservationRepo(),
	}
}

func newTestService() (*Service, *data.Data) {
	d := newTestData()
	return NewService(d, newTestConfig(), newTestLogger()), d
}

// validHex returns a well-formed object id hex with no matching record.
func validHex() string {
	return strings.Repeat("a", 24)
}
