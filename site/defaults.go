package site

// Starter files written by Scaffold, keyed by template name.
var defaultTemplates = map[string]string{
	TemplateBase: `<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>{{title}}</title>
		<meta name="description" content="{{description}}">
		<link rel="stylesheet" href="/styles/main.css">
	</head>
	<body>
		<header>
			<nav>
				<a href="/">Home</a>
				<a href="/blog/">Blog</a>
				<a href="/experiments/">Experiments</a>
				<a href="/about/">About</a>
			</nav>
		</header>
		<main>
			{{content}}
		</main>
		<footer>
			<p>&copy; {{year}}</p>
		</footer>
	</body>
</html>
`,

	TemplateHome: `<section class="intro">
	<h1>Hello.</h1>
	<p>Notes on rebuilding the fundamentals.</p>
</section>
<section>
	<h2>Recent posts</h2>
	<ul class="post-list">
		{{posts}}
	</ul>
	<p><a href="/blog/">All posts</a></p>
</section>
`,

	TemplateBlog: `<h1>Blog</h1>
<ul class="post-list">
	{{posts}}
</ul>
`,

	TemplatePost: `<article class="post">
	<header>
		<h1>{{title}}</h1>
		<time datetime="{{date}}">{{formattedDate}}</time>
	</header>
	{{content}}
</article>
`,

	TemplateAbout: `<h1>About</h1>
<p>Write something about yourself here.</p>
`,

	TemplateExperiments: `<h1>Experiments</h1>
<p>Nothing here yet.</p>
`,
}

const defaultStyles = `body {
	max-width: 42rem;
	margin: 0 auto;
	padding: 1rem;
	font-family: system-ui, sans-serif;
	line-height: 1.6;
}

nav a {
	margin-right: 1rem;
}

.post-list {
	list-style: none;
	padding: 0;
}

.post-card {
	margin-bottom: 1.5rem;
}

.post-meta {
	color: #666;
	font-size: 0.9rem;
}
`

const defaultPost = `---
title: Hello, World
date: 2025-01-17
description: The first post.
---

This is the first post. Edit or remove it in the content directory.
`
