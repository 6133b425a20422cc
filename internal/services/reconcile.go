package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/internal/repositories"
)

// Reconciler repairs the drift the non-transactional toggle can leave
// behind: wishlist entries without a matching like, likes without a
// matching entry, and entries pointing at blogs that no longer exist.
// It also backfills the derived word count on blogs persisted before
// the field existed.
type Reconciler struct {
	blogRepository     repositories.BlogRepository
	wishlistRepository repositories.WishlistRepository
	logg               zerolog.Logger
}

// ReconcileReport summarizes what a sweep changed.
type ReconcileReport struct {
	WordCountsSet int `json:"wordCountsSet"`
	LikesAdded    int `json:"likesAdded"`
	LikesRemoved  int `json:"likesRemoved"`
	EntriesPruned int `json:"entriesPruned"`
}

// NewReconciler creates a new Reconciler
func NewReconciler(blogRepo repositories.BlogRepository, wishlistRepo repositories.WishlistRepository, logg zerolog.Logger) *Reconciler {
	return &Reconciler{
		blogRepository:     blogRepo,
		wishlistRepository: wishlistRepo,
		logg:               logg,
	}
}

// Run executes one full sweep.
func (r *Reconciler) Run(ctx context.Context) (*ReconcileReport, error) {
	report := &ReconcileReport{}

	if err := r.backfillWordCounts(ctx, report); err != nil {
		return nil, err
	}
	if err := r.reconcileLikes(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *Reconciler) backfillWordCounts(ctx context.Context, report *ReconcileReport) error {
	blogs, err := r.blogRepository.GetBlogsMissingWordCount(ctx)
	if err != nil {
		return err
	}
	for _, blog := range blogs {
		if err := r.blogRepository.SetWordCount(ctx, blog.ID.Hex(), models.CountWords(blog.Content)); err != nil {
			return err
		}
		report.WordCountsSet++
	}
	return nil
}

func (r *Reconciler) reconcileLikes(ctx context.Context, report *ReconcileReport) error {
	entries, err := r.wishlistRepository.GetAllEntries(ctx)
	if err != nil {
		return err
	}
	blogs, err := r.blogRepository.GetAllBlogs(ctx)
	if err != nil {
		return err
	}

	likesByBlog := make(map[string]map[string]bool, len(blogs))
	for _, blog := range blogs {
		likes := make(map[string]bool, len(blog.Likes))
		for _, userID := range blog.Likes {
			likes[userID] = true
		}
		likesByBlog[blog.ID.Hex()] = likes
	}

	entrySet := make(map[string]map[string]bool, len(entries))
	for _, entry := range entries {
		likes, blogExists := likesByBlog[entry.BlogID]
		if !blogExists {
			// Weak reference to a deleted blog; prune the orphan.
			if _, err := r.wishlistRepository.DeleteEntry(ctx, entry.UserID, entry.BlogID); err != nil {
				return err
			}
			r.logg.Debug().Str("userId", entry.UserID).Str("blogId", entry.BlogID).Msg("pruned orphaned wishlist entry")
			report.EntriesPruned++
			continue
		}
		if entrySet[entry.BlogID] == nil {
			entrySet[entry.BlogID] = make(map[string]bool)
		}
		entrySet[entry.BlogID][entry.UserID] = true

		if !likes[entry.UserID] {
			if err := r.blogRepository.AddLike(ctx, entry.BlogID, entry.UserID); err != nil {
				return err
			}
			report.LikesAdded++
		}
	}

	for _, blog := range blogs {
		blogID := blog.ID.Hex()
		for _, userID := range blog.Likes {
			if !entrySet[blogID][userID] {
				if err := r.blogRepository.RemoveLike(ctx, blogID, userID); err != nil {
					return err
				}
				report.LikesRemoved++
			}
		}
	}
	return nil
}
