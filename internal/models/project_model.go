package models

// Request models
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	Images      []string `json:"images"`
	VideoURL    string   `json:"videoUrl"`
	Date        string   `json:"date"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	ImageURL    *string   `json:"imageUrl"`
	Images      *[]string `json:"images"`
	VideoURL    *string   `json:"videoUrl"`
	Date        *string   `json:"date"`
	Featured    *bool     `json:"featured"`
	Tags        *[]string `json:"tags"`
}

// Response models
type ProjectResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images,omitempty"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Date        string   `json:"date"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
}
