package service

// SetTitle returns an UpdateSetter that sets the service's title.
func SetTitle(title string) UpdateSetter {
	return func(s *Service) error {
		if blank(title) {
			return ErrInvalidTitle
		}
		s.Title = title
		return nil
	}
}

// SetDescription returns an UpdateSetter that sets the service's description.
func SetDescription(description string) UpdateSetter {
	return func(s *Service) error {
		if blank(description) {
			return ErrInvalidDescription
		}
		s.Description = description
		return nil
	}
}

// SetImage returns an UpdateSetter that sets the service's image URL.
func SetImage(image string) UpdateSetter {
	return func(s *Service) error {
		if blank(image) {
			return ErrInvalidImage
		}
		s.Image = image
		return nil
	}
}

// SetIcon returns an UpdateSetter that sets the service's icon label. A nil icon clears it.
func SetIcon(icon *string) UpdateSetter {
	return func(s *Service) error {
		s.Icon = icon
		return nil
	}
}
