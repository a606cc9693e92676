package contentControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

type BlogPostView struct {
	ID          uint      `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body,omitempty"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"published_at"`
}

func blogPostView(p models.BlogPost, lang models.Lang, withBody bool) BlogPostView {
	v := BlogPostView{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       models.Pick(lang, p.TitleNO, p.TitleEN),
		Excerpt:     models.Pick(lang, p.ExcerptNO, p.ExcerptEN),
		Image:       p.Image,
		PublishedAt: p.PublishedAt,
	}
	if withBody {
		v.Body = models.Pick(lang, p.BodyNO, p.BodyEN)
	}
	return v
}

// GET /blog — published posts only
func GetBlogPosts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := middleware.Lang(c)

		var posts []models.BlogPost
		if err := db.Where("published = ?", true).
			Order("published_at DESC").Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
			return
		}

		views := make([]BlogPostView, 0, len(posts))
		for _, p := range posts {
			views = append(views, blogPostView(p, lang, false))
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /blog/:slug
func GetBlogPostBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.BlogPost
		if err := db.Where("slug = ? AND published = ?", c.Param("slug"), true).
			First(&post).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog post"})
			}
			return
		}
		c.JSON(http.StatusOK, blogPostView(post, middleware.Lang(c), true))
	}
}

type BlogPostInput struct {
	Slug      string `json:"slug" binding:"required"`
	TitleNO   string `json:"title_no" binding:"required"`
	TitleEN   string `json:"title_en"`
	ExcerptNO string `json:"excerpt_no"`
	ExcerptEN string `json:"excerpt_en"`
	BodyNO    string `json:"body_no"`
	BodyEN    string `json:"body_en"`
	Image     string `json:"image"`
	Published bool   `json:"published"`
}

// POST /admin/blog
func CreateBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BlogPostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		post := models.BlogPost{
			Slug:      input.Slug,
			TitleNO:   input.TitleNO,
			TitleEN:   input.TitleEN,
			ExcerptNO: input.ExcerptNO,
			ExcerptEN: input.ExcerptEN,
			BodyNO:    input.BodyNO,
			BodyEN:    input.BodyEN,
			Image:     input.Image,
			Published: input.Published,
		}
		if post.Published {
			post.PublishedAt = time.Now()
		}

		if err := db.Create(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// PUT /admin/blog/:id
func UpdateBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
			return
		}

		var post models.BlogPost
		if err := db.First(&post, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}

		var input BlogPostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		wasPublished := post.Published

		post.Slug = input.Slug
		post.TitleNO = input.TitleNO
		post.TitleEN = input.TitleEN
		post.ExcerptNO = input.ExcerptNO
		post.ExcerptEN = input.ExcerptEN
		post.BodyNO = input.BodyNO
		post.BodyEN = input.BodyEN
		post.Image = input.Image
		post.Published = input.Published
		if post.Published && !wasPublished {
			post.PublishedAt = time.Now()
		}

		if err := db.Save(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// DELETE /admin/blog/:id
func DeleteBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
			return
		}

		result := db.Delete(&models.BlogPost{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
	}
}
