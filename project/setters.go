package project

// SetTitle returns an UpdateSetter that sets the project's title.
func SetTitle(title string) UpdateSetter {
	return func(p *Project) error {
		if blank(title) {
			return ErrInvalidTitle
		}
		p.Title = title
		return nil
	}
}

// SetDescription returns an UpdateSetter that sets the project's description.
func SetDescription(description string) UpdateSetter {
	return func(p *Project) error {
		if blank(description) {
			return ErrInvalidDescription
		}
		p.Description = description
		return nil
	}
}

// SetImage returns an UpdateSetter that sets the project's image URL.
func SetImage(image string) UpdateSetter {
	return func(p *Project) error {
		if blank(image) {
			return ErrInvalidImage
		}
		p.Image = image
		return nil
	}
}

// SetCategory returns an UpdateSetter that sets the project's category.
func SetCategory(category string) UpdateSetter {
	return func(p *Project) error {
		if blank(category) {
			return ErrInvalidCategory
		}
		p.Category = category
		return nil
	}
}
