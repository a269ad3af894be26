package article

import "strings"

// SetTitle returns an UpdateSetter that sets the article's title.
func SetTitle(title string) UpdateSetter {
	return func(a *Article) error {
		if strings.TrimSpace(title) == "" {
			return ErrInvalidTitle
		}
		a.Title = title
		return nil
	}
}

// SetContent returns an UpdateSetter that sets the article's body.
func SetContent(content string) UpdateSetter {
	return func(a *Article) error {
		if strings.TrimSpace(content) == "" {
			return ErrInvalidContent
		}
		a.Content = content
		return nil
	}
}

// SetImage returns an UpdateSetter that sets the article's cover image.
func SetImage(image string) UpdateSetter {
	return func(a *Article) error {
		if strings.TrimSpace(image) == "" {
			return ErrInvalidImage
		}
		a.Image = image
		return nil
	}
}
