package types

// Clone returns a deep copy of the resume. Customization mutates
// achievement scores and ordering, so callers that keep the original
// must get an independent structure back.
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}

	out := &ResumeData{}

	if r.Personal != nil {
		out.Personal = make(map[string]string, len(r.Personal))
		for k, v := range r.Personal {
			out.Personal[k] = v
		}
	}

	if r.Summary != nil {
		out.Summary = &Summary{
			Headline: r.Summary.Headline,
			Bullets:  cloneStrings(r.Summary.Bullets),
		}
	}

	if r.Experience != nil {
		out.Experience = make([]Experience, len(r.Experience))
		for i, exp := range r.Experience {
			out.Experience[i] = exp
			out.Experience[i].Achievements = cloneAchievements(exp.Achievements)
		}
	}

	if r.Skills != nil {
		out.Skills = make(Skills, len(r.Skills))
		for i, group := range r.Skills {
			out.Skills[i] = SkillGroup{Name: group.Name, Category: group.Category.clone()}
		}
	}

	if r.Education != nil {
		out.Education = append([]Education(nil), r.Education...)
	}

	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		for i, proj := range r.Projects {
			out.Projects[i] = proj
			out.Projects[i].Keywords = cloneStrings(proj.Keywords)
			out.Projects[i].Technologies = cloneStrings(proj.Technologies)
		}
	}

	if r.Keywords != nil {
		out.Keywords = make(map[string][]string, len(r.Keywords))
		for k, v := range r.Keywords {
			out.Keywords[k] = cloneStrings(v)
		}
	}

	return out
}

func cloneAchievements(achievements []Achievement) []Achievement {
	if achievements == nil {
		return nil
	}
	out := make([]Achievement, len(achievements))
	for i, a := range achievements {
		out[i] = a
		out[i].Keywords = cloneStrings(a.Keywords)
		if a.Metrics != nil {
			m := *a.Metrics
			out[i].Metrics = &m
		}
	}
	return out
}

func (c SkillCategory) clone() SkillCategory {
	out := SkillCategory{Flat: cloneStrings(c.Flat)}
	if c.Levels != nil {
		out.Levels = make([]SkillLevel, len(c.Levels))
		for i, level := range c.Levels {
			out.Levels[i] = SkillLevel{Name: level.Name, Skills: cloneStrings(level.Skills)}
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
