package bootstrap

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/odontofast/internal/client/client"
	"github.com/dmitrijs2005/odontofast/internal/client/models"
	"github.com/dmitrijs2005/odontofast/internal/client/repositories/session"
	"github.com/dmitrijs2005/odontofast/internal/client/services"
	"github.com/dmitrijs2005/odontofast/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type recordingConsumer struct {
	mu     sync.Mutex
	events []string
	routes []Decision
}

func (r *recordingConsumer) HideLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "hide")
}

func (r *recordingConsumer) ShowRoute(d Decision) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "route")
	r.routes = append(r.routes, d)
}

type stubClient struct {
	resp *models.LoginResponse
}

func (s stubClient) Login(ctx context.Context, nrCarteira, senha string) (*models.LoginResponse, error) {
	return s.resp, nil
}

func openStore(t *testing.T, dsn string) *session.SQLiteStore {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewSQLiteStore(db)
}

func TestBootstrapper_EmptyStoreRoutesUnauthenticated(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "s.db"))
	svc := services.NewSessionService(stubClient{}, store, logging.Nop())

	c := &recordingConsumer{}
	d := New(svc, logging.Nop()).Run(ctx, c, Prerequisite{Name: "resources"})

	assert.Equal(t, Unauthenticated(), d)
	assert.Equal(t, []string{"hide", "route"}, c.events)
}

func TestBootstrapper_LoginThenRestartRoutesAuthenticated(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "s.db")

	first := services.NewSessionService(
		stubClient{resp: &models.LoginResponse{Nome: "Ana", Token: "t1"}},
		openStore(t, dsn), logging.Nop())
	_, err := first.Login(ctx, "123456", "secret1")
	require.NoError(t, err)

	// новый процесс: свежий сервис поверх того же файла
	restarted := services.NewSessionService(stubClient{}, openStore(t, dsn), logging.Nop())

	c := &recordingConsumer{}
	d := New(restarted, logging.Nop()).Run(ctx, c, Prerequisite{Name: "resources"})

	assert.Equal(t, Authenticated("Ana"), d)
	assert.Equal(t, []Decision{Authenticated("Ana")}, c.routes)
}

func TestBootstrapper_CorruptedUserRecordRoutesUnauthenticated(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.PutAll(ctx, map[string]string{
		session.TokenKey: "t1",
		session.UserKey:  "{not json",
	}))
	svc := services.NewSessionService(stubClient{}, store, logging.Nop())

	d := New(svc, logging.Nop()).Run(ctx, &recordingConsumer{})
	assert.Equal(t, Unauthenticated(), d)
}

func TestBootstrapper_WaitsForEveryPrerequisite(t *testing.T) {
	ctx := context.Background()
	svc := &fakeAuth{authenticated: true, user: &models.UserData{Nome: "Ana"}}

	release := make(chan struct{})
	loaded := make(chan struct{})
	c := &recordingConsumer{}

	done := make(chan Decision, 1)
	go func() {
		done <- New(svc, logging.Nop()).Run(ctx, c, Prerequisite{
			Name: "resources",
			Load: func(ctx context.Context) error {
				close(loaded)
				<-release
				return nil
			},
		})
	}()

	<-loaded
	select {
	case <-done:
		t.Fatal("resolved before resources were loaded")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case d := <-done:
		assert.Equal(t, Authenticated("Ana"), d)
	case <-time.After(2 * time.Second):
		t.Fatal("bootstrap did not resolve")
	}
}

func TestBootstrapper_FailedPrerequisiteStillResolves(t *testing.T) {
	svc := &fakeAuth{}
	c := &recordingConsumer{}

	d := New(svc, logging.Nop()).Run(context.Background(), c,
		Prerequisite{Name: "resources", Load: func(context.Context) error { return errors.New("missing catalog") }},
		Prerequisite{Name: "panicky", Load: func(context.Context) error { panic("boom") }},
		Prerequisite{Name: "noop"},
	)

	assert.Equal(t, Unauthenticated(), d)
	assert.Len(t, c.routes, 1)
}

func TestBootstrapper_TimeoutForcesResolution(t *testing.T) {
	svc := &fakeAuth{authenticated: true, user: &models.UserData{Nome: "Ana"}}
	c := &recordingConsumer{}

	hang := make(chan struct{})
	t.Cleanup(func() { close(hang) })

	d := New(svc, logging.Nop(), WithTimeout(30*time.Millisecond)).Run(context.Background(), c,
		Prerequisite{Name: "resources", Load: func(context.Context) error { <-hang; return nil }},
	)

	assert.Equal(t, Authenticated("Ana"), d, "auth decision survives the timeout")
	assert.Equal(t, []string{"hide", "route"}, c.events)
}

func TestBootstrapper_RunTwiceEmitsOnce(t *testing.T) {
	svc := &fakeAuth{authenticated: true, user: &models.UserData{Nome: "Ana"}}
	c := &recordingConsumer{}
	b := New(svc, logging.Nop())

	first := b.Run(context.Background(), c)
	second := b.Run(context.Background(), c)

	assert.Equal(t, first, second)
	assert.Len(t, c.routes, 1)
}

// slowConsumer blocks in HideLoading so the timeout fires while the gate
// is still notifying.
type slowConsumer struct {
	recordingConsumer
	delay time.Duration
}

func (s *slowConsumer) HideLoading() {
	time.Sleep(s.delay)
	s.recordingConsumer.HideLoading()
}

func TestBootstrapper_TimeoutWaitsForConsumerNotification(t *testing.T) {
	svc := services.NewSessionService(stubClient{}, session.NewMemoryStore(), logging.Nop())
	c := &slowConsumer{delay: 200 * time.Millisecond}

	d := New(svc, logging.Nop(), WithTimeout(50*time.Millisecond)).Run(context.Background(), c)

	assert.Equal(t, Unauthenticated(), d)
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, []string{"hide", "route"}, c.events, "route delivered before Run returns")
}

func TestBootstrapper_CanceledContextWaitsForConsumerNotification(t *testing.T) {
	svc := &fakeAuth{}
	c := &slowConsumer{delay: 100 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	d := New(svc, logging.Nop()).Run(ctx, c)

	assert.Equal(t, Unauthenticated(), d)
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Len(t, c.routes, 1)
}

func TestBootstrapper_DuplicatePrerequisitesAllAwaited(t *testing.T) {
	svc := &fakeAuth{}
	c := &recordingConsumer{}

	release := make(chan struct{})
	var slowDone bool
	go func() {
		time.Sleep(30 * time.Millisecond)
		close(release)
	}()

	New(svc, logging.Nop()).Run(context.Background(), c,
		Prerequisite{Name: "resources"},
		Prerequisite{Name: "resources", Load: func(context.Context) error {
			<-release
			slowDone = true
			return nil
		}},
	)

	assert.True(t, slowDone, "resolved only after both loaders finished")
	assert.Len(t, c.routes, 1)
}

func TestBootstrapper_ReservedPrerequisiteNameSkipped(t *testing.T) {
	svc := &fakeAuth{authenticated: true, user: &models.UserData{Nome: "Ana"}}
	c := &recordingConsumer{}

	var ran bool
	d := New(svc, logging.Nop()).Run(context.Background(), c,
		Prerequisite{Name: PrereqAuth, Load: func(context.Context) error { ran = true; return nil }},
	)

	assert.Equal(t, Authenticated("Ana"), d)
	assert.False(t, ran)
	assert.Len(t, c.routes, 1)
}
