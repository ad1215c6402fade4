package prep

import "context"

// QuestionNode is a question decorated with the deep-dive flag used by the
// public knowledge-base pages to decide whether to render a "read more" link.
type QuestionNode struct {
	Question
	DeepDive bool `json:"deepDive"`
}

type TopicNode struct {
	Topic
	Questions []QuestionNode `json:"questions"`
	Resources []Resource     `json:"resources"`
}

type PathNode struct {
	Path
	Topics    []TopicNode `json:"topics"`
	Resources []Resource  `json:"resources"` // path-level (general) resources
}

// Tree loads the whole prep hierarchy in four queries and assembles it in
// memory, preserving the per-level sort orders of the list methods.
func (s *Service) Tree(ctx context.Context) ([]PathNode, error) {
	paths, err := s.ListPaths(ctx)
	if err != nil {
		return nil, err
	}
	topics, err := s.ListTopics(ctx, "")
	if err != nil {
		return nil, err
	}
	questions, err := s.ListQuestions(ctx, "")
	if err != nil {
		return nil, err
	}
	resources, err := s.ListResources(ctx, "", "")
	if err != nil {
		return nil, err
	}

	questionsByTopic := map[string][]QuestionNode{}
	for _, q := range questions {
		questionsByTopic[q.TopicID] = append(questionsByTopic[q.TopicID], QuestionNode{
			Question: q,
			DeepDive: IsDeepTopic(q.Answer),
		})
	}

	resourcesByTopic := map[string][]Resource{}
	resourcesByPath := map[string][]Resource{}
	for _, r := range resources {
		switch {
		case r.TopicID != nil:
			resourcesByTopic[*r.TopicID] = append(resourcesByTopic[*r.TopicID], r)
		case r.PathID != nil:
			resourcesByPath[*r.PathID] = append(resourcesByPath[*r.PathID], r)
		}
	}

	topicsByPath := map[string][]TopicNode{}
	for _, t := range topics {
		node := TopicNode{
			Topic:     t,
			Questions: questionsByTopic[t.ID],
			Resources: resourcesByTopic[t.ID],
		}
		if node.Questions == nil {
			node.Questions = []QuestionNode{}
		}
		if node.Resources == nil {
			node.Resources = []Resource{}
		}
		topicsByPath[t.PathID] = append(topicsByPath[t.PathID], node)
	}

	out := make([]PathNode, 0, len(paths))
	for _, p := range paths {
		node := PathNode{
			Path:      p,
			Topics:    topicsByPath[p.ID],
			Resources: resourcesByPath[p.ID],
		}
		if node.Topics == nil {
			node.Topics = []TopicNode{}
		}
		if node.Resources == nil {
			node.Resources = []Resource{}
		}
		out = append(out, node)
	}
	return out, nil
}
