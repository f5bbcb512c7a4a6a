package web

const indexHTML = `
<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>PlayKaro</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.8/dist/css/bootstrap.min.css" rel="stylesheet">
  </head>
  <body data-bs-theme="dark">
    <nav class="navbar bg-body-tertiary">
      <div class="container-fluid">
        <a class="navbar-brand" href="/">PlayKaro</a>
      </div>
    </nav>

    <div class="container mt-4">
      <h1 class="mb-1">Discover Videos</h1>
      <p class="text-muted">Browse our collection of amazing content</p>

      <form method="get" action="/" class="my-4" style="max-width: 32rem">
        <input class="form-control" type="search" name="q" placeholder="Search videos..." value="{{.Query}}" />
      </form>

      {{if .Videos}}
      <div class="row row-cols-1 row-cols-md-2 row-cols-lg-3 row-cols-xl-4 g-4">
        {{range .Videos}}
        <div class="col">
          <div class="card h-100">
            {{if .ThumbnailURL}}
            <img src="{{.ThumbnailURL}}" class="card-img-top" alt="{{.Title}}" />
            {{end}}
            <div class="card-body">
              <h5 class="card-title text-truncate">{{.Title}}</h5>
              {{if .Description}}<p class="card-text text-truncate">{{.Description}}</p>{{end}}
              <a href="/videos/{{.ID}}" class="stretched-link"></a>
            </div>
          </div>
        </div>
        {{end}}
      </div>
      {{else}}
      <div class="alert alert-secondary">
        {{if .Query}}No videos found matching your search{{else}}No videos available yet{{end}}
      </div>
      {{end}}
    </div>
  </body>
</html>
`

const watchHTML = `
<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>{{.Title}} - PlayKaro</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.8/dist/css/bootstrap.min.css" rel="stylesheet">
  </head>
  <body data-bs-theme="dark">
    <nav class="navbar bg-body-tertiary">
      <div class="container-fluid">
        <a class="navbar-brand" href="/">PlayKaro</a>
        <a href="/" class="btn btn-outline-light">Back to Videos</a>
      </div>
    </nav>

    <div class="container my-4" style="max-width: 60rem">
      <div class="ratio ratio-16x9 mb-4">
        <video controls src="{{.VideoURL}}">Your browser does not support the video tag.</video>
      </div>

      <h1 class="mb-2">{{.Title}}</h1>
      {{if .Description}}
      <div class="card mb-3"><div class="card-body" style="white-space: pre-wrap">{{.Description}}</div></div>
      {{end}}
      <p class="text-muted">Uploaded {{.UploadedOn}}</p>
    </div>
  </body>
</html>
`

const notFoundHTML = `
<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>Video not found - PlayKaro</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.8/dist/css/bootstrap.min.css" rel="stylesheet">
  </head>
  <body data-bs-theme="dark">
    <nav class="navbar bg-body-tertiary">
      <div class="container-fluid">
        <a class="navbar-brand" href="/">PlayKaro</a>
      </div>
    </nav>

    <div class="container my-5 text-center">
      <p class="text-muted fs-5 mb-4">Video not found</p>
      <a href="/" class="btn btn-outline-light">Back to Home</a>
    </div>
  </body>
</html>
`
