package models

type Video struct {
	Title  string `json:"title"`
	Length string `json:"length"`
}

type CourseModule struct {
	Title  string  `json:"title"`
	Videos []Video `json:"videos"`
}

type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Instructor  string         `json:"instructor"`
	Duration    string         `json:"duration"`
	Price       int64          `json:"price"`
	ImageURL    string         `json:"image_url"`
	Modules     []CourseModule `json:"modules"`
}

func (c Course) RecordID() string    { return c.ID }
func (c Course) Kind() RecordKind    { return KindCourse }
func (c Course) DisplayName() string { return c.Title }
func (c Course) UnitPrice() int64    { return c.Price }
func (Course) isRecord()             {}

func (c Course) Snapshot() Cartable {
	if c.Modules != nil {
		mods := make([]CourseModule, len(c.Modules))
		for i, m := range c.Modules {
			mods[i] = CourseModule{Title: m.Title}
			if m.Videos != nil {
				mods[i].Videos = append([]Video(nil), m.Videos...)
			}
		}
		c.Modules = mods
	}
	return c
}
