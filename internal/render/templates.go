package render

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Portfolio.Profile.Name}} - {{.Portfolio.Profile.Headline}}</title>
<link rel="stylesheet" href="{{.AssetBase}}assets/site.css">
</head>
<body>
<div id="portfolio" class="layout" data-lookahead="{{.Lookahead}}" data-sections="{{.SectionIDs}}">
{{- with .Portfolio.Profile}}
<nav class="sidebar">
  <div class="identity">
    <h2>{{.Name}}</h2>
    <p>{{.Headline}}</p>
  </div>
  <ul class="nav">
  {{- range $.Nav}}
    <li><a href="#{{.ID}}" data-nav="{{.ID}}" class="nav-item{{if .Active}} active{{end}}"{{if .Active}} aria-current="true"{{end}}>{{.Title}}</a></li>
  {{- end}}
  </ul>
  <div class="social">
    {{- if .GitHubURL}}<a href="{{.GitHubURL}}" target="_blank" rel="noopener noreferrer" aria-label="GitHub">GitHub</a>{{end}}
    {{- if .LinkedInURL}}<a href="{{.LinkedInURL}}" target="_blank" rel="noopener noreferrer" aria-label="LinkedIn">LinkedIn</a>{{end}}
    {{- if .Email}}<a href="mailto:{{.Email}}" aria-label="Email">Email</a>{{end}}
  </div>
</nav>
{{- end}}
<main class="content">
{{- with .Portfolio.Profile}}
<section id="home" class="section hero">
  <div class="inner hero-inner">
    {{- if .HeadshotPath}}
    <img class="headshot" src="{{$.Asset .HeadshotPath}}" alt="{{.Name}}">
    {{- else}}
    <div class="headshot placeholder">{{initial .Name}}</div>
    {{- end}}
    <div>
      <h1>{{.Name}}</h1>
      <h2 class="headline">{{.Headline}}</h2>
      <p class="lead">{{.Summary}}</p>
      <div class="actions">
        <a href="#projects" data-nav="projects" class="button primary">View Projects &rsaquo;</a>
        {{- if .ResumePath}}
        <a href="{{$.Asset .ResumePath}}" download class="button secondary">Resume</a>
        {{- end}}
      </div>
    </div>
  </div>
</section>
{{- end}}
<section id="about" class="section">
  <div class="inner">
    <h2>About Me</h2>
    {{- range .Portfolio.Profile.About}}
    <div class="prose">{{markdown .}}</div>
    {{- end}}
    {{- if .Portfolio.Education}}
    <h3>Education</h3>
    {{- range .Portfolio.Education}}
    <div class="entry">
      <h4>{{.School}}</h4>
      <p class="accent">{{.Program}}</p>
      <p class="meta">{{if .GPA}}GPA: {{.GPA}} &bull; {{end}}{{.Period}}</p>
      {{- range .Honours}}
      <p>&bull; {{.}}</p>
      {{- end}}
    </div>
    {{- end}}
    {{- end}}
    {{- if .Portfolio.Skills}}
    <h3>Technical Skills</h3>
    <div class="skills">
    {{- range .Portfolio.Skills}}
      <div><h4>{{.Name}}</h4><p>{{.Items}}</p></div>
    {{- end}}
    </div>
    {{- end}}
  </div>
</section>
<section id="experience" class="section alt">
  <div class="inner">
    <h2>Experience</h2>
    {{- range .Portfolio.Experience}}
    <div class="timeline">
      <h3>{{.Role}}</h3>
      <p class="meta"><span class="accent">{{.Company}}</span>{{if .Location}} &bull; {{.Location}}{{end}}{{if .Period}} &bull; {{.Period}}{{end}}</p>
      <ul>
      {{- range .Points}}
        <li>{{.}}</li>
      {{- end}}
      </ul>
    </div>
    {{- end}}
  </div>
</section>
<section id="projects" class="section">
  <div class="inner">
    <h2>Projects</h2>
    {{- range .Portfolio.Projects}}
    <article class="entry project" id="project-{{.ID}}">
      <h3>{{.Title}}</h3>
      <p class="meta"><span class="accent">{{.Tech}}</span>{{if .Date}} &bull; {{.Date}}{{end}}</p>
      {{- if .HasAward}}
      <span class="award">{{.Award}}</span>
      {{- end}}
      <ul>
      {{- range .Points}}
        <li>{{.}}</li>
      {{- end}}
      </ul>
    </article>
    {{- end}}
  </div>
</section>
{{- with .Portfolio.Profile}}
<section id="contact" class="section alt">
  <div class="inner">
    <h2>Get In Touch</h2>
    <p class="lead">{{.ContactBlurb}}</p>
    <div class="cards">
      {{- if .Email}}
      <a class="card" href="mailto:{{.Email}}"><h3>Email</h3><p>{{.Email}}</p></a>
      {{- end}}
      {{- if .LinkedInURL}}
      <a class="card" href="{{.LinkedInURL}}" target="_blank" rel="noopener noreferrer"><h3>LinkedIn</h3><p>{{trimScheme .LinkedInURL}}</p></a>
      {{- end}}
      {{- if .GitHubURL}}
      <a class="card" href="{{.GitHubURL}}" target="_blank" rel="noopener noreferrer"><h3>GitHub</h3><p>{{trimScheme .GitHubURL}}</p></a>
      {{- end}}
    </div>
  </div>
</section>
{{- end}}
</main>
</div>
<script src="{{.AssetBase}}assets/site.js" defer></script>
</body>
</html>
`

const cssContent = `*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  color: #334155;
  background: #fff;
}
a { color: inherit; }
.layout { display: flex; min-height: 100vh; }
.sidebar {
  position: fixed; left: 0; top: 0; z-index: 50;
  display: flex; flex-direction: column;
  width: 16rem; height: 100vh; padding: 2rem;
  background: #f8fafc; border-right: 1px solid #e2e8f0;
}
.identity { margin-bottom: 3rem; }
.identity h2 { margin: 0; font-size: 1.25rem; color: #1e293b; }
.identity p { margin: .25rem 0 0; font-size: .875rem; color: #475569; }
.nav { flex: 1; list-style: none; margin: 0; padding: 0; }
.nav li + li { margin-top: .5rem; }
.nav-item {
  display: block; padding: .5rem 1rem; border-radius: .5rem;
  text-decoration: none; color: #334155; transition: all .3s;
}
.nav-item:hover { background: #e2e8f0; }
.nav-item.active { background: #2563eb; color: #fff; }
.social { display: flex; gap: 1rem; margin-top: 2rem; font-size: .875rem; }
.social a { color: #475569; text-decoration: none; }
.social a:hover { color: #2563eb; }
.content { flex: 1; margin-left: 16rem; }
.section { min-height: 100vh; display: flex; align-items: center; padding: 5rem 4rem; }
.section.alt { background: #f8fafc; }
.hero { justify-content: center; background: linear-gradient(135deg, #eff6ff, #fff); }
.inner { width: 100%; max-width: 56rem; }
.hero-inner { display: flex; align-items: center; gap: 4rem; }
.headshot { width: 16rem; height: 16rem; border-radius: 50%; object-fit: cover; flex-shrink: 0; }
.headshot.placeholder {
  display: flex; align-items: center; justify-content: center;
  background: #dbeafe; color: #2563eb; font-size: 5rem; font-weight: 700;
}
h1 { font-size: 3rem; margin: 0 0 1rem; color: #1e293b; }
h2 { font-size: 2.25rem; margin: 0 0 2rem; color: #1e293b; }
.headline { font-size: 1.5rem; color: #2563eb; font-weight: 400; margin-bottom: 1.5rem; }
h3 { font-size: 1.5rem; color: #1e293b; margin: 2.5rem 0 1rem; }
.entry h3, .timeline h3 { margin-top: 0; }
h4 { margin: 0 0 .5rem; color: #1e293b; }
.lead, .prose { font-size: 1.125rem; line-height: 1.7; }
.actions { display: flex; gap: 1rem; }
.button { padding: .75rem 1.5rem; border-radius: .5rem; text-decoration: none; }
.button.primary { background: #2563eb; color: #fff; }
.button.primary:hover { background: #1d4ed8; }
.button.secondary { border: 2px solid #2563eb; color: #2563eb; }
.accent { color: #2563eb; font-weight: 500; }
.meta { font-size: .875rem; color: #475569; }
.entry { border-left: 4px solid #2563eb; padding-left: 1.5rem; margin-bottom: 3rem; }
.timeline { position: relative; border-left: 2px solid #2563eb; padding: 0 0 3rem 2rem; }
.timeline::before {
  content: ""; position: absolute; left: -9px; top: 0;
  width: 1rem; height: 1rem; border-radius: 50%; background: #2563eb;
}
.timeline li, .entry li { line-height: 1.7; margin-bottom: .5rem; }
.award {
  display: inline-block; margin: .25rem 0 .75rem; padding: .25rem .75rem;
  border-radius: 9999px; background: #dbeafe; color: #1d4ed8; font-size: .875rem;
}
.skills { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1.5rem; }
.cards { display: grid; grid-template-columns: repeat(3, 1fr); gap: 2rem; }
.card {
  display: flex; flex-direction: column; align-items: center; padding: 1.5rem;
  background: #fff; border-radius: .5rem; text-decoration: none;
  box-shadow: 0 1px 2px rgba(0,0,0,.05); transition: box-shadow .2s;
}
.card:hover { box-shadow: 0 4px 6px rgba(0,0,0,.1); }
.card h3 { margin: 0 0 .5rem; font-size: 1rem; }
.card p { margin: 0; font-size: .875rem; }
@media (max-width: 768px) {
  .sidebar { position: static; width: 100%; height: auto; }
  .layout { flex-direction: column; }
  .content { margin-left: 0; }
  .hero-inner { flex-direction: column; }
  .cards, .skills { grid-template-columns: 1fr; }
}
`

// jsContent mirrors scroll.Tracker and scroll.Navigator for the browser.
const jsContent = `(function () {
  "use strict";
  var root = document.getElementById("portfolio");
  if (!root) return;

  var lookahead = Number(root.getAttribute("data-lookahead"));
  if (!isFinite(lookahead)) lookahead = 200;
  var sections = (root.getAttribute("data-sections") || "").split(" ");
  var links = document.querySelectorAll(".nav [data-nav]");

  function setActive(id) {
    for (var i = 0; i < links.length; i++) {
      var on = links[i].getAttribute("data-nav") === id;
      links[i].classList.toggle("active", on);
      if (on) links[i].setAttribute("aria-current", "true");
      else links[i].removeAttribute("aria-current");
    }
  }

  function onScroll() {
    var y = window.scrollY + lookahead;
    for (var i = 0; i < sections.length; i++) {
      var el = document.getElementById(sections[i]);
      if (!el) continue;
      if (y >= el.offsetTop && y < el.offsetTop + el.offsetHeight) {
        setActive(sections[i]);
        break;
      }
    }
  }

  function onNavigate(ev) {
    var el = document.getElementById(ev.currentTarget.getAttribute("data-nav"));
    if (!el) return;
    ev.preventDefault();
    el.scrollIntoView({ behavior: "smooth" });
  }

  var targets = document.querySelectorAll("[data-nav]");
  for (var i = 0; i < targets.length; i++) {
    targets[i].addEventListener("click", onNavigate);
  }
  window.addEventListener("scroll", onScroll);
  window.addEventListener("pagehide", function (ev) {
    // A persisted page is kept in the back/forward cache and keeps its listener.
    if (!ev.persisted) window.removeEventListener("scroll", onScroll);
  });
  window.addEventListener("pageshow", function (ev) {
    if (!ev.persisted) return;
    window.addEventListener("scroll", onScroll);
    onScroll();
  });
})();
`
