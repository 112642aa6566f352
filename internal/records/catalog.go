package records

import "strconv"

var (
	PersonalInfo = Schema{
		Kind:     "personal-info",
		Title:    "Personal Information",
		Table:    "personal_info",
		IDColumn: "id",
		Columns: []Column{
			{Name: "name", Label: "Name"},
			{Name: "email", Label: "Email"},
			{Name: "phone", Label: "Phone"},
			{Name: "bio", Label: "Bio", Multiline: true},
		},
		ListPath: "/personal-info",
		Messages: Messages{
			List:   "Unable to load personal information.",
			Load:   "Unable to load personal information.",
			Create: "Unable to add personal information.",
			Update: "Unable to update personal information.",
			Delete: "Unable to delete the personal info.",
		},
	}

	Education = Schema{
		Kind:     "education",
		Title:    "Education",
		Table:    "education",
		IDColumn: "id",
		Columns: []Column{
			{Name: "school", Label: "School"},
			{Name: "achievement", Label: "Achievement"},
			{Name: "start_year", Label: "Start Year"},
			{Name: "end_year", Label: "End Year"},
		},
		ListPath: "/education",
		Messages: Messages{
			List:   "Unable to load education data.",
			Load:   "Unable to load education information.",
			Create: "Unable to add education information.",
			Update: "Unable to update education information.",
			Delete: "Unable to delete the education info.",
		},
	}

	WorkExperience = Schema{
		Kind:     "work-experience",
		Title:    "Work Experience",
		Table:    "work_experience",
		IDColumn: "id",
		Columns: []Column{
			{Name: "company", Label: "Company"},
			{Name: "position", Label: "Position"},
			{Name: "start_year", Label: "Start Year"},
			{Name: "end_year", Label: "End Year"},
			{Name: "description", Label: "Description", Multiline: true},
		},
		ListPath: "/work-experience",
		Messages: Messages{
			List:   "Unable to load work experience data.",
			Load:   "Unable to load work experience.",
			Create: "Unable to add work experience.",
			Update: "Unable to update work experience.",
			Delete: "Unable to delete the work experience.",
		},
	}

	Skill = Schema{
		Kind:     "skill",
		Title:    "Skills",
		Table:    "skills",
		IDColumn: "id",
		Columns: []Column{
			{Name: "skill_name", Label: "Skill"},
			{Name: "category", Label: "Category"},
			{Name: "proficiency_level", Label: "Proficiency Level"},
		},
		ListPath: "/skills",
		Messages: Messages{
			List:   "Unable to load skills data.",
			Load:   "Unable to load skill.",
			Create: "Unable to add skill.",
			Update: "Unable to update skill.",
			Delete: "Unable to delete the skill.",
		},
	}

	Project = Schema{
		Kind:     "project",
		Title:    "Projects",
		Table:    "projects",
		IDColumn: "id",
		Columns: []Column{
			{Name: "project_name", Label: "Project Name"},
			{Name: "description", Label: "Description", Multiline: true},
			{Name: "start_date", Label: "Start Date"},
			{Name: "end_date", Label: "End Date"},
		},
		ListPath: "/projects",
		Messages: Messages{
			List:   "Unable to load projects data.",
			Load:   "Unable to load project.",
			Create: "Unable to add project.",
			Update: "Unable to update project.",
			Delete: "Unable to delete the project.",
		},
	}

	// Contact messages are write-only: they are stored but never listed or edited.
	Contact = Schema{
		Kind:     "contact",
		Title:    "Contact",
		Table:    "contact",
		IDColumn: "id",
		Columns: []Column{
			{Name: "name", Label: "Name"},
			{Name: "email", Label: "Email"},
			{Name: "message", Label: "Message", Multiline: true},
		},
		WriteOnly: true,
		Messages: Messages{
			Create: "Unable to submit your message. Please try again.",
		},
	}
)

// Editable returns the five entity kinds that support the full CRUD contract, in the
// order they appear in navigation.
func Editable() []Schema {
	return []Schema{PersonalInfo, Education, WorkExperience, Skill, Project}
}

// All returns every known schema including the write-only contact kind.
func All() []Schema {
	return append(Editable(), Contact)
}

// Lookup finds a schema by kind slug or table name.
func Lookup(name string) (Schema, bool) {
	for _, s := range All() {
		if s.Kind == name || s.Table == name {
			return s, true
		}
	}
	return Schema{}, false
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
