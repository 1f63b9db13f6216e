// internal/api/accessors.go - per-kind convenience wrappers around Fetch/FetchOne
package api

import "xibbaz/internal/objects"

// Host looks a single host up by id or name.
func (s *Session) Host(nameOrID string) (*objects.Host, error) {
	o, err := s.FetchOne(objects.KindHost, nameOrID)
	if o == nil || err != nil {
		return nil, err
	}
	return &objects.Host{Object: o}, nil
}

func (s *Session) Hosts(params map[string]any) ([]*objects.Object, error) {
	return s.Fetch(objects.KindHost, params)
}

// Group looks a single host group up by id or name.
func (s *Session) Group(nameOrID string) (*objects.Group, error) {
	o, err := s.FetchOne(objects.KindGroup, nameOrID)
	if o == nil || err != nil {
		return nil, err
	}
	return &objects.Group{Object: o}, nil
}

func (s *Session) Groups(params map[string]any) ([]*objects.Object, error) {
	return s.Fetch(objects.KindGroup, params)
}

// Template looks a single template up by id or name.
func (s *Session) Template(nameOrID string) (*objects.Template, error) {
	o, err := s.FetchOne(objects.KindTemplate, nameOrID)
	if o == nil || err != nil {
		return nil, err
	}
	return &objects.Template{Object: o}, nil
}

func (s *Session) Templates(params map[string]any) ([]*objects.Object, error) {
	return s.Fetch(objects.KindTemplate, params)
}

// Item looks a single item up by id or name.
func (s *Session) Item(nameOrID string) (*objects.Item, error) {
	o, err := s.FetchOne(objects.KindItem, nameOrID)
	if o == nil || err != nil {
		return nil, err
	}
	return &objects.Item{Object: o}, nil
}

func (s *Session) Items(params map[string]any) ([]*objects.Object, error) {
	return s.Fetch(objects.KindItem, params)
}

// Trigger looks a single trigger up by id.
func (s *Session) Trigger(id string) (*objects.Object, error) {
	return s.FetchOne(objects.KindTrigger, id)
}

func (s *Session) Triggers(params map[string]any) ([]*objects.Object, error) {
	return s.Fetch(objects.KindTrigger, params)
}

// Event looks a single event up by id.
func (s *Session) Event(id string) (*objects.Event, error) {
	o, err := s.FetchOne(objects.KindEvent, id)
	if o == nil || err != nil {
		return nil, err
	}
	return &objects.Event{Object: o}, nil
}

func (s *Session) Events(params map[string]any) ([]*objects.Object, error) {
	return s.Fetch(objects.KindEvent, params)
}

func (s *Session) Problems(params map[string]any) ([]*objects.Object, error) {
	return s.Fetch(objects.KindProblem, params)
}
