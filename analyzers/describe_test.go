package analyzers

import "testing"

func TestDescribe(t *testing.T) {
	cases := []struct {
		content  string
		expected string
	}{
		{"# Sample", "<h1>Sample</h1>\n"},
		{"## Sample", "<h2>Sample</h2>\n"},
		{"`Sample`", "<p><code>Sample</code></p>\n"},
		{"[link](https://example.com)", `<p><a href="https://example.com" rel="nofollow">link</a></p>` + "\n"},
		{"![image](https://sample.org/image.png)", `<p><img src="https://sample.org/image.png" alt="image"></p>` + "\n"},
	}

	for _, tc := range cases {
		m := RuleMeta{Description: tc.content}
		actual, err := m.Describe()
		if err != nil {
			t.Error(err)
		}

		if actual != tc.expected {
			t.Errorf("expected: %s, got: %s\n", tc.expected, actual)
		}
	}
}
