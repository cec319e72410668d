package showroom

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/showroom/cms"
)

type fakeSource struct {
	posts        atomic.Int32
	post         atomic.Int32
	content      atomic.Int32
	certificates atomic.Int32

	mu    sync.Mutex
	err   error
	block chan struct{}
}

func (f *fakeSource) fail() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeSource) PostsByCategory(ctx context.Context, category string, count int) ([]cms.Node, error) {
	f.posts.Add(1)
	if f.block != nil {
		<-f.block
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []cms.Node{{Slug: category + "-1", Title: "One"}}, nil
}

func (f *fakeSource) PostBySlug(ctx context.Context, slug string) (cms.Node, error) {
	f.post.Add(1)
	if err := f.fail(); err != nil {
		return cms.Node{}, err
	}
	return cms.Node{Slug: slug}, nil
}

func (f *fakeSource) PostContent(ctx context.Context, slug string) (string, error) {
	f.content.Add(1)
	return "<img src=\"/a.jpg\">", f.fail()
}

func (f *fakeSource) Certificate(ctx context.Context, category, number string) (cms.Node, error) {
	f.certificates.Add(1)
	return cms.Node{Slug: number}, nil
}

// newTestCache returns a cache whose clock only moves when advance is called.
func newTestCache(src ContentSource, ttl time.Duration) (*ContentCache, func(time.Duration)) {
	c := NewContentCache(src, ttl)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	c.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	return c, func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}
}

func TestContentCacheReusesUntilTTL(t *testing.T) {
	src := &fakeSource{}
	c, advance := newTestCache(src, time.Minute)
	ctx := context.Background()

	first, err := c.Posts(ctx, "fenlei", 100)
	require.NoError(t, err)
	second, err := c.Posts(ctx, "fenlei", 100)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached result differs (-first +second):\n%s", diff)
	}
	assert.EqualValues(t, 1, src.posts.Load())

	advance(59 * time.Second)
	_, _ = c.Posts(ctx, "fenlei", 100)
	assert.EqualValues(t, 1, src.posts.Load())

	advance(time.Second)
	_, _ = c.Posts(ctx, "fenlei", 100)
	assert.EqualValues(t, 2, src.posts.Load(), "an entry expires once ttl has passed")
}

func TestContentCacheKeysByQuery(t *testing.T) {
	src := &fakeSource{}
	c, _ := newTestCache(src, time.Minute)
	ctx := context.Background()

	_, _ = c.Posts(ctx, "fenlei", 100)
	_, _ = c.Posts(ctx, "fenlei", 12)
	_, _ = c.Posts(ctx, "anli", 100)
	_, _ = c.Post(ctx, "fenlei")
	_, _ = c.Gallery(ctx, "fenlei")

	assert.EqualValues(t, 3, src.posts.Load())
	assert.EqualValues(t, 1, src.post.Load())
	assert.EqualValues(t, 1, src.content.Load())
	assert.Equal(t, 5, c.Len())
}

func TestContentCacheDoesNotCacheErrors(t *testing.T) {
	src := &fakeSource{}
	src.setErr(errors.New("cms down"))
	c, _ := newTestCache(src, time.Minute)
	ctx := context.Background()

	_, err := c.Post(ctx, "arco")
	require.Error(t, err)
	_, err = c.Post(ctx, "arco")
	require.Error(t, err)
	assert.EqualValues(t, 2, src.post.Load())
	assert.Zero(t, c.Len())

	src.setErr(nil)
	n, err := c.Post(ctx, "arco")
	require.NoError(t, err)
	assert.Equal(t, "arco", n.Slug)
	assert.Equal(t, 1, c.Len())
}

func TestContentCacheCollapsesConcurrentMisses(t *testing.T) {
	src := &fakeSource{block: make(chan struct{})}
	c, _ := newTestCache(src, time.Minute)

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Posts(context.Background(), "fenlei", 100)
			errs <- err
		}()
	}
	// Let the first query start before releasing it.
	require.Eventually(t, func() bool { return src.posts.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(src.block)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, src.posts.Load())
}

func TestContentCacheSharedLoadSurvivesLeaderCancel(t *testing.T) {
	src := &fakeSource{block: make(chan struct{})}
	c, _ := newTestCache(src, time.Minute)

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leader := make(chan error, 1)
	go func() {
		_, err := c.Posts(leaderCtx, "fenlei", 100)
		leader <- err
	}()
	require.Eventually(t, func() bool { return src.posts.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		nodes []cms.Node
		err   error
	}
	follower := make(chan result, 1)
	go func() {
		nodes, err := c.Posts(context.Background(), "fenlei", 100)
		follower <- result{nodes, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	select {
	case err := <-leader:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatalf("cancelled caller kept waiting on the shared load")
	}

	close(src.block)
	select {
	case r := <-follower:
		require.NoError(t, r.err)
		assert.Len(t, r.nodes, 1)
	case <-time.After(time.Second):
		t.Fatalf("second caller never returned")
	}
	assert.EqualValues(t, 1, src.posts.Load())
	assert.Equal(t, 1, c.Len(), "the shared result is cached even though its first caller left")
}

func TestContentCacheInvalidate(t *testing.T) {
	src := &fakeSource{}
	c, _ := newTestCache(src, time.Minute)
	ctx := context.Background()

	_, _ = c.Gallery(ctx, "visionaries-gallery")
	c.Invalidate()
	assert.Zero(t, c.Len())

	_, _ = c.Gallery(ctx, "visionaries-gallery")
	assert.EqualValues(t, 2, src.content.Load())
}

func TestContentCacheZeroTTLBypasses(t *testing.T) {
	src := &fakeSource{}
	c, _ := newTestCache(src, 0)
	ctx := context.Background()

	_, _ = c.Posts(ctx, "fenlei", 100)
	_, _ = c.Posts(ctx, "fenlei", 100)
	assert.EqualValues(t, 2, src.posts.Load())
	assert.Zero(t, c.Len())
}

func TestContentCacheNeverCachesCertificates(t *testing.T) {
	src := &fakeSource{}
	c, _ := newTestCache(src, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n, err := c.Certificate(ctx, "zhengshu", "zs-001")
		require.NoError(t, err)
		assert.Equal(t, "zs-001", n.Slug)
	}
	assert.EqualValues(t, 3, src.certificates.Load())
	assert.Zero(t, c.Len())
}
