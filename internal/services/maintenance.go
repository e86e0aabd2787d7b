package services

import (
	"time"

	"buzzline/internal/db"
	"buzzline/internal/models"
)

// PostRetention 帖子保留窗口，清理时从当下往回算
const PostRetention = 30 * 24 * time.Hour

// DeleteInactiveUsers removes users who never authored a post. Comments and
// likes by the user do not count as activity; their rows go away via cascade.
func DeleteInactiveUsers() (int64, error) {
	res := db.DB.
		Where("id NOT IN (?)", db.DB.Model(&models.Post{}).Select("DISTINCT user_id")).
		Delete(&models.User{})
	return res.RowsAffected, res.Error
}

// DeleteOldPosts removes posts older than the retention window.
func DeleteOldPosts() (int64, error) {
	cutoff := time.Now().Add(-PostRetention)
	res := db.DB.Where("created_at < ?", cutoff).Delete(&models.Post{})
	return res.RowsAffected, res.Error
}

// DeleteOrphanComments removes comments whose post is gone. Normally redundant
// thanks to cascade deletes; only matters if the pragma was ever off.
func DeleteOrphanComments() (int64, error) {
	res := db.DB.
		Where("post_id NOT IN (?)", db.DB.Model(&models.Post{}).Select("id")).
		Delete(&models.Comment{})
	return res.RowsAffected, res.Error
}

// DeleteOrphanLikes removes likes whose post is gone.
func DeleteOrphanLikes() (int64, error) {
	res := db.DB.
		Where("post_id NOT IN (?)", db.DB.Model(&models.Post{}).Select("id")).
		Delete(&models.Like{})
	return res.RowsAffected, res.Error
}

// OptimizeDatabase rewrites the database file to reclaim freed space.
// VACUUM cannot run inside a transaction, so it goes through Exec directly.
func OptimizeDatabase() error {
	return db.DB.Exec("VACUUM").Error
}
