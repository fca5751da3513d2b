package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeloraJewelry/storefront_api/internal/models"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
	"github.com/VeloraJewelry/storefront_api/pkg/wixblog"
)

type fakeBlogFetcher struct {
	posts []wixblog.RawPost
	err   error
}

func (f *fakeBlogFetcher) ListPosts(context.Context) ([]wixblog.RawPost, error) {
	return f.posts, f.err
}

func (f *fakeBlogFetcher) GetPost(_ context.Context, slug string) (*wixblog.RawPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, wixblog.ErrPostNotFound
}

func rawPostFixture(slug, excerpt, body string) wixblog.RawPost {
	p := wixblog.RawPost{ID: "id-" + slug, Slug: slug, Title: slug, Excerpt: excerpt}
	p.RichContent.Nodes = []models.RichNode{
		{Type: models.RichNodeParagraph, Nodes: []models.RichNode{
			{Type: models.RichNodeText, Text: body},
		}},
	}
	return p
}

func TestBlogService_ListPostsDerivesExcerptAndDropsBody(t *testing.T) {
	fetcher := &fakeBlogFetcher{posts: []wixblog.RawPost{
		rawPostFixture("care-guide", "", "How to care for gold vermeil."),
		rawPostFixture("lookbook", "Provided excerpt", "Full body"),
	}}

	posts, err := NewBlogService(fetcher).ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "How to care for gold vermeil.", posts[0].Excerpt)
	assert.Nil(t, posts[0].Content, "list view carries no body")
	assert.Equal(t, "Provided excerpt", posts[1].Excerpt)
}

func TestBlogService_ExcerptTruncated(t *testing.T) {
	long := strings.Repeat("sparkle ", 100)
	fetcher := &fakeBlogFetcher{posts: []wixblog.RawPost{rawPostFixture("long", "", long)}}

	posts, err := NewBlogService(fetcher).ListPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts[0].Excerpt, excerptLimit)
}

func TestBlogService_GetPost(t *testing.T) {
	fetcher := &fakeBlogFetcher{posts: []wixblog.RawPost{rawPostFixture("care-guide", "", "Body text.")}}
	svc := NewBlogService(fetcher)

	post, err := svc.GetPost(context.Background(), "care-guide")
	require.NoError(t, err)
	assert.NotNil(t, post.Content, "detail view keeps the body")

	_, err = svc.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}
