// Package seed holds the default portfolio shown before the studio has
// published any work of its own. It is loaded into an empty project store on
// first start.
package seed

import (
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/types"
)

// DefaultProjects returns the starter portfolio.
func DefaultProjects() []repository.Project {
	return []repository.Project{
		{
			ID:          "1",
			Title:       "Corporate Brand Campaign",
			Description: "Complete visual identity campaign for Fortune 500 company including photography, videography, and multi-platform content distribution.",
			Category:    types.CategoryPhotography,
			ImageURL:    "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images: []string{
				"https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=1200",
				"https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg?auto=compress&cs=tinysrgb&w=1200",
				"https://images.pexels.com/photos/3184293/pexels-photo-3184293.jpeg?auto=compress&cs=tinysrgb&w=1200",
			},
			Date:     "2024-01-15",
			Featured: true,
			Tags:     []string{"corporate", "branding", "campaign", "distribution"},
		},
		{
			ID:          "2",
			Title:       "Product Launch Video",
			Description: "High-end commercial video production for tech startup product launch, distributed across social media platforms and streaming services.",
			Category:    types.CategoryVideography,
			ImageURL:    "https://images.pexels.com/photos/3153198/pexels-photo-3153198.jpeg?auto=compress&cs=tinysrgb&w=800",
			VideoURL:    "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4",
			Date:        "2024-02-20",
			Featured:    true,
			Tags:        []string{"commercial", "product", "launch", "distribution"},
		},
		{
			ID:          "3",
			Title:       "Fashion Editorial Series",
			Description: "Complete fashion photography series for luxury brand, including studio and location shoots with comprehensive post-production.",
			Category:    types.CategoryPhotography,
			ImageURL:    "https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images: []string{
				"https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=1200",
				"https://images.pexels.com/photos/1040946/pexels-photo-1040946.jpeg?auto=compress&cs=tinysrgb&w=1200",
				"https://images.pexels.com/photos/1040947/pexels-photo-1040947.jpeg?auto=compress&cs=tinysrgb&w=1200",
			},
			Date:     "2024-03-10",
			Featured: false,
			Tags:     []string{"fashion", "editorial", "luxury", "studio"},
		},
		{
			ID:          "4",
			Title:       "Documentary Film Project",
			Description: "Award-winning documentary production covering social impact stories, with full post-production and distribution strategy.",
			Category:    types.CategoryVideography,
			ImageURL:    "https://images.pexels.com/photos/3153207/pexels-photo-3153207.jpeg?auto=compress&cs=tinysrgb&w=800",
			VideoURL:    "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4",
			Date:        "2024-04-05",
			Featured:    true,
			Tags:        []string{"documentary", "social impact", "storytelling", "awards"},
		},
		{
			ID:          "5",
			Title:       "Event Coverage Package",
			Description: "Comprehensive event documentation including live streaming, photography, and same-day content delivery for social media.",
			Category:    types.CategoryPhotography,
			ImageURL:    "https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images: []string{
				"https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg?auto=compress&cs=tinysrgb&w=1200",
				"https://images.pexels.com/photos/2747450/pexels-photo-2747450.jpeg?auto=compress&cs=tinysrgb&w=1200",
			},
			Date:     "2024-05-12",
			Featured: false,
			Tags:     []string{"events", "live streaming", "social media", "coverage"},
		},
	}
}
