// ABOUTME: Built-in table of AI news sources with their feed settings
// ABOUTME: Order here is the processing order of a run

package registry

import "ai-news-digest/core/domain"

// defaultSources is the built-in source table. Disabled entries stay listed
// so a YAML override or manual edit can switch them on.
var defaultSources = []domain.SourceConfig{
	// Industry research and major AI companies
	{
		ID:          "openai-blog",
		Name:        "OpenAI Blog",
		Description: "Latest research and product announcements from OpenAI",
		RSSURL:      "https://openai.com/news/rss.xml",
		BaseURL:     "https://openai.com",
		Enabled:     true,
		Tags:        []string{"ai", "research", "gpt", "openai"},
		MaxArticles: 5,
	},
	{
		ID:          "deepmind-blog",
		Name:        "DeepMind Blog",
		Description: "AI research breakthroughs and insights from DeepMind",
		RSSURL:      "https://deepmind.google/blog/feed/basic/",
		BaseURL:     "https://deepmind.google",
		Enabled:     true,
		Tags:        []string{"ai", "research", "deepmind", "google"},
		MaxArticles: 5,
	},
	{
		ID:          "anthropic-news",
		Name:        "Anthropic News",
		Description: "AI safety and research updates from Anthropic",
		RSSURL:      "https://raw.githubusercontent.com/Olshansk/rss-feeds/main/feeds/feed_anthropic.xml",
		BaseURL:     "https://www.anthropic.com",
		Enabled:     true,
		Tags:        []string{"ai", "safety", "anthropic", "claude"},
		MaxArticles: 5,
	},
	{
		ID:          "google-ai-blog",
		Name:        "Google AI Blog",
		Description: "Research and developments from Google's AI teams",
		RSSURL:      "https://blog.google/technology/ai/rss/",
		BaseURL:     "https://blog.google",
		Enabled:     true,
		Tags:        []string{"ai", "research", "google", "tensorflow"},
		MaxArticles: 5,
	},

	// Academic research
	{
		ID:          "arxiv-cs-ai",
		Name:        "ArXiv CS.AI",
		Description: "Latest AI research papers from ArXiv",
		RSSURL:      "https://arxiv.org/rss/cs.AI",
		BaseURL:     "https://arxiv.org",
		Enabled:     false,
		Tags:        []string{"ai", "research", "papers", "academic"},
		MaxArticles: 3,
	},
	{
		ID:          "arxiv-cs-lg",
		Name:        "ArXiv CS.LG (Machine Learning)",
		Description: "Latest machine learning research papers from ArXiv",
		RSSURL:      "https://arxiv.org/rss/cs.LG",
		BaseURL:     "https://arxiv.org",
		Enabled:     false,
		Tags:        []string{"ai", "ml", "research", "papers", "academic"},
		MaxArticles: 3,
	},
	{
		ID:          "berkeley-ai-research",
		Name:        "Berkeley AI Research",
		Description: "Deep technical analysis from UC Berkeley AI Research",
		RSSURL:      "https://bair.berkeley.edu/blog/feed.xml",
		BaseURL:     "https://bair.berkeley.edu",
		Enabled:     true,
		Tags:        []string{"ai", "research", "berkeley", "academic"},
		MaxArticles: 3,
	},

	// Specialized AI sites
	{
		ID:          "unite-ai",
		Name:        "Unite.AI",
		Description: "Latest AI news and developments",
		RSSURL:      "https://www.unite.ai/feed/",
		BaseURL:     "https://www.unite.ai",
		Enabled:     true,
		Tags:        []string{"ai", "news", "industry"},
		MaxArticles: 5,
	},
	{
		ID:          "the-decoder",
		Name:        "The Decoder",
		Description: "AI news and deep dives into artificial intelligence",
		RSSURL:      "https://the-decoder.com/feed/",
		BaseURL:     "https://the-decoder.com",
		Enabled:     true,
		Tags:        []string{"ai", "news", "analysis"},
		MaxArticles: 3,
	},
	{
		ID:          "ai-business",
		Name:        "AI Business",
		Description: "Business-focused AI news and insights",
		RSSURL:      "https://aibusiness.com/rss.xml",
		BaseURL:     "https://aibusiness.com",
		Enabled:     true,
		Tags:        []string{"ai", "business", "enterprise"},
		MaxArticles: 3,
	},

	// News and industry analysis
	{
		ID:          "mit-tech-review",
		Name:        "MIT Technology Review",
		Description: "In-depth technology analysis and AI coverage",
		RSSURL:      "https://www.technologyreview.com/feed/",
		BaseURL:     "https://www.technologyreview.com",
		Enabled:     true,
		Tags:        []string{"tech", "ai", "analysis", "mit"},
		MaxArticles: 3,
	},
	{
		ID:          "venturebeat-ai",
		Name:        "VentureBeat AI",
		Description: "AI-focused coverage from VentureBeat",
		RSSURL:      "https://venturebeat.com/category/ai/feed/",
		BaseURL:     "https://venturebeat.com",
		Enabled:     true,
		Tags:        []string{"ai", "business", "startups"},
		MaxArticles: 4,
	},
	{
		ID:          "wired-ai",
		Name:        "Wired AI",
		Description: "AI coverage from Wired magazine",
		RSSURL:      "https://www.wired.com/feed/tag/ai/latest/rss",
		BaseURL:     "https://www.wired.com",
		Enabled:     true,
		Tags:        []string{"ai", "tech", "culture", "wired"},
		MaxArticles: 3,
	},
}
