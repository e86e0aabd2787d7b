package services

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"buzzline/internal/db"
	"buzzline/internal/models"
)

const exportTimeFormat = "2006-01-02 15:04:05"

// writeCSV 统一的导出例程：固定表头 + 每行一条记录，覆盖同名旧文件
func writeCSV(dir, name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	return w.WriteAll(rows)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ExportUsers writes users.csv into dir, rows in insertion order of id.
func ExportUsers(dir string) error {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return err
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			formatID(u.ID), u.Username, u.Email, u.CreatedAt.Format(exportTimeFormat),
		})
	}
	return writeCSV(dir, "users.csv", []string{"ID", "Username", "Email", "Created At"}, rows)
}

// ExportPosts writes posts.csv, each row carrying the author's username.
func ExportPosts(dir string) error {
	var posts []models.Post
	if err := db.DB.Preload("User").Find(&posts).Error; err != nil {
		return err
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{
			formatID(p.ID), p.User.Username, p.Content, p.CreatedAt.Format(exportTimeFormat),
		})
	}
	return writeCSV(dir, "posts.csv", []string{"Post ID", "Username", "Content", "Created At"}, rows)
}

// ExportComments writes comments.csv with author username and referenced post content.
func ExportComments(dir string) error {
	var comments []models.Comment
	if err := db.DB.Preload("User").Preload("Post").Find(&comments).Error; err != nil {
		return err
	}

	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{
			formatID(c.ID), c.User.Username, c.Post.Content, c.Content, c.CreatedAt.Format(exportTimeFormat),
		})
	}
	return writeCSV(dir, "comments.csv",
		[]string{"Comment ID", "Username", "Post Content", "Comment Content", "Created At"}, rows)
}

// ExportLikes writes likes.csv, rendering the liked post's content rather than its id.
func ExportLikes(dir string) error {
	var likes []models.Like
	if err := db.DB.Preload("User").Preload("Post").Find(&likes).Error; err != nil {
		return err
	}

	rows := make([][]string, 0, len(likes))
	for _, l := range likes {
		rows = append(rows, []string{
			formatID(l.ID), l.User.Username, l.Post.Content, l.CreatedAt.Format(exportTimeFormat),
		})
	}
	return writeCSV(dir, "likes.csv", []string{"Like ID", "Username", "Post Content", "Created At"}, rows)
}

// ExportLogs writes logs.csv with the full audit trail.
func ExportLogs(dir string) error {
	var entries []models.LogEntry
	if err := db.DB.Find(&entries).Error; err != nil {
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			formatID(e.ID), e.Event, e.Details, e.CreatedAt.Format(exportTimeFormat),
		})
	}
	return writeCSV(dir, "logs.csv", []string{"Log ID", "Event", "Details", "Created At"}, rows)
}
