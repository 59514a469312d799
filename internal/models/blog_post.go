package models

type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

func (b BlogPost) RecordID() string    { return b.ID }
func (b BlogPost) Kind() RecordKind    { return KindBlogPost }
func (b BlogPost) DisplayName() string { return b.Title }
func (BlogPost) isRecord()             {}
