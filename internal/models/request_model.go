package models

import "time"

// Request models
type EstimateRequest struct {
	ProjectDuration   int      `json:"projectDuration" binding:"required,min=1"`
	QualityLevel      string   `json:"qualityLevel" binding:"required"`
	SoundEquipment    bool     `json:"soundEquipment"`
	Stabilizers       bool     `json:"stabilizers"`
	Lighting          bool     `json:"lighting"`
	Drones            bool     `json:"drones"`
	AdditionalCameras int      `json:"additionalCameras" binding:"min=0"`
	Services          []string `json:"services"`
}

type CreateCustomRequest struct {
	Name              string   `json:"name" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	Phone             string   `json:"phone"`
	ProjectDuration   int      `json:"projectDuration" binding:"required,min=1"`
	QualityLevel      string   `json:"qualityLevel" binding:"required"`
	SoundEquipment    bool     `json:"soundEquipment"`
	Stabilizers       bool     `json:"stabilizers"`
	Lighting          bool     `json:"lighting"`
	Drones            bool     `json:"drones"`
	AdditionalCameras int      `json:"additionalCameras" binding:"min=0"`
	Services          []string `json:"services"`
	Message           string   `json:"message"`
}

// Response models
type EstimateResponse struct {
	EstimatedPrice int64 `json:"estimatedPrice"`
}

type CustomRequestResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	ProjectDuration   int       `json:"projectDuration"`
	QualityLevel      string    `json:"qualityLevel"`
	SoundEquipment    bool      `json:"soundEquipment"`
	Stabilizers       bool      `json:"stabilizers"`
	Lighting          bool      `json:"lighting"`
	Drones            bool      `json:"drones"`
	AdditionalCameras int       `json:"additionalCameras"`
	Services          []string  `json:"services"`
	Message           string    `json:"message"`
	EstimatedPrice    int64     `json:"estimatedPrice"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}
