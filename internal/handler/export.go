package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/rohitpatil07/flaskapp/internal/repository"
	"github.com/rohitpatil07/flaskapp/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ExportHandler lets a user download their own posts.
type ExportHandler struct {
	Posts repository.PostRepository
}

func NewExportHandler(posts repository.PostRepository) *ExportHandler {
	return &ExportHandler{Posts: posts}
}

// ExportCSV streams the current user's posts as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	posts, err := h.Posts.ByAuthor(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query posts")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"posts_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	writer.Write([]string{"id", "body", "link", "created_at"})
	for _, p := range posts {
		writer.Write([]string{
			fmt.Sprintf("%d", p.ID),
			p.Body,
			p.Link,
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("write posts csv")
	}
}

// ExportXLSX downloads the current user's posts as an XLSX workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	posts, err := h.Posts.ByAuthor(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query posts")
		return
	}

	f := excelize.NewFile()
	sheetName := "Posts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Body", "Link", "Created at"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, name)
	}

	for idx, p := range posts {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Body)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Link)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.CreatedAt.Format(time.RFC3339))
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 50)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 22)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"posts_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
