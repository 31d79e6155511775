// Package dashboard serves the embedded single-page view over the JSON API.
package dashboard

import "net/http"

// Handler serves the static dashboard page. All data arrives through the
// /api endpoints, so the page itself carries no state.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(dashboardHTML))
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Tablero de Proyectos de Investigación</title>
<style>
  :root {
    --bg: #f4f6f9;
    --surface: #ffffff;
    --border: #d9dee5;
    --text: #1f2933;
    --text-dim: #6b7280;
    --accent: #2563eb;
    --green: #16a34a;
    --blue: #0284c7;
  }
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
    background: var(--bg);
    color: var(--text);
    font-size: 14px;
    line-height: 1.5;
    padding: 16px;
  }
  header {
    display: flex;
    align-items: center;
    justify-content: space-between;
    margin-bottom: 16px;
    padding-bottom: 12px;
    border-bottom: 1px solid var(--border);
  }
  header h1 { font-size: 20px; font-weight: 600; }
  header h1 span { color: var(--accent); }
  .meta { font-size: 12px; color: var(--text-dim); }
  .notice {
    display: none;
    margin-bottom: 16px;
    padding: 10px 14px;
    border: 1px solid #f0c36d;
    border-radius: 6px;
    background: #fdf3d7;
    color: #8a6d1a;
  }
  .toolbar {
    display: flex;
    flex-wrap: wrap;
    gap: 8px;
    align-items: center;
    margin-bottom: 16px;
  }
  .toolbar select {
    padding: 6px 10px;
    border: 1px solid var(--border);
    border-radius: 6px;
    background: var(--surface);
    color: var(--text);
    font-size: 13px;
  }
  .toolbar button, .toolbar a.button {
    padding: 6px 14px;
    border: 1px solid var(--border);
    border-radius: 6px;
    background: var(--surface);
    color: var(--accent);
    font-size: 13px;
    cursor: pointer;
    text-decoration: none;
  }
  .toolbar button:hover, .toolbar a.button:hover { border-color: var(--accent); }
  .cards {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
    gap: 12px;
    margin-bottom: 16px;
  }
  .metric {
    background: var(--surface);
    border: 1px solid var(--border);
    border-radius: 8px;
    padding: 14px;
  }
  .metric .value { font-size: 24px; font-weight: 600; }
  .metric .label { font-size: 12px; color: var(--text-dim); text-transform: uppercase; letter-spacing: 0.5px; }
  .metric.active .value { color: var(--green); }
  .metric.completed .value { color: var(--blue); }
  h2 {
    font-size: 14px;
    font-weight: 600;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    margin: 20px 0 10px;
    color: var(--text-dim);
  }
  .kanban {
    display: flex;
    gap: 12px;
    overflow-x: auto;
    padding-bottom: 8px;
  }
  .column {
    min-width: 220px;
    border-radius: 8px;
    padding: 10px;
    border: 1px solid var(--border);
  }
  .column h3 { font-size: 13px; margin-bottom: 8px; }
  .column h3 small { color: var(--text-dim); font-weight: normal; }
  .ticket {
    background: var(--surface);
    border: 1px solid var(--border);
    border-radius: 6px;
    padding: 8px;
    margin-bottom: 6px;
    font-size: 12px;
  }
  .ticket .who { color: var(--text-dim); }
  .split {
    display: grid;
    grid-template-columns: 1fr 1fr;
    gap: 16px;
  }
  @media (max-width: 900px) { .split { grid-template-columns: 1fr; } }
  table {
    width: 100%;
    border-collapse: collapse;
    background: var(--surface);
    border: 1px solid var(--border);
    border-radius: 8px;
    overflow: hidden;
  }
  th, td {
    text-align: left;
    padding: 8px 12px;
    border-bottom: 1px solid var(--border);
    font-size: 13px;
  }
  th { background: #eef1f5; font-size: 12px; text-transform: uppercase; letter-spacing: 0.5px; }
  tr:last-child td { border-bottom: none; }
  .count { text-align: right; font-variant-numeric: tabular-nums; }
</style>
</head>
<body>
<header>
  <h1>Tablero de <span>Proyectos de Investigación</span></h1>
  <div class="meta" id="meta"></div>
</header>

<div class="notice" id="notice"></div>

<div class="toolbar">
  <select id="priority_line"><option value="all">Todas las líneas</option></select>
  <select id="status"><option value="all">Todos los estados</option></select>
  <select id="network"><option value="all">Todas las redes</option></select>
  <button onclick="refreshData()">Actualizar datos</button>
  <a class="button" id="export" href="/api/export.csv">Descargar CSV</a>
</div>

<div class="cards">
  <div class="metric"><div class="value" id="m-total">–</div><div class="label">Proyectos</div></div>
  <div class="metric active"><div class="value" id="m-active">–</div><div class="label">Activos</div></div>
  <div class="metric completed"><div class="value" id="m-completed">–</div><div class="label">Completados</div></div>
  <div class="metric"><div class="value" id="m-lines">–</div><div class="label">Líneas prioritarias</div></div>
  <div class="metric"><div class="value" id="m-networks">–</div><div class="label">Redes</div></div>
</div>

<h2>Tablero por estado</h2>
<div class="kanban" id="kanban"></div>

<div class="split">
  <div>
    <h2>Proyectos por línea prioritaria</h2>
    <table><tbody id="by-line"></tbody></table>
  </div>
  <div>
    <h2>Proyectos por gestor</h2>
    <table><tbody id="by-manager"></tbody></table>
  </div>
</div>

<h2>Listado</h2>
<table>
  <thead>
    <tr><th>#</th><th>Estudio</th><th>Línea</th><th>Red</th><th>Estado</th><th>Investigador principal</th></tr>
  </thead>
  <tbody id="projects"></tbody>
</table>

<script>
const selectors = ['priority_line', 'status', 'network'];

function query() {
  const params = new URLSearchParams();
  for (const name of selectors) {
    const value = document.getElementById(name).value;
    if (value && value !== 'all') params.set(name, value);
  }
  const qs = params.toString();
  return qs ? '?' + qs : '';
}

function esc(s) {
  const div = document.createElement('div');
  div.textContent = s == null ? '' : s;
  return div.innerHTML;
}

async function getJSON(url) {
  const resp = await fetch(url);
  if (!resp.ok) throw new Error(url + ': ' + resp.status);
  return resp.json();
}

async function loadFilters() {
  const filters = await getJSON('/api/filters');
  fillSelect('priority_line', filters.priority_lines, 'Todas las líneas');
  fillSelect('status', filters.statuses, 'Todos los estados');
  fillSelect('network', filters.networks, 'Todas las redes');
}

function fillSelect(id, values, allLabel) {
  const select = document.getElementById(id);
  const current = select.value;
  select.innerHTML = '<option value="all">' + esc(allLabel) + '</option>';
  for (const value of values || []) {
    const opt = document.createElement('option');
    opt.value = value;
    opt.textContent = value;
    select.appendChild(opt);
  }
  select.value = current || 'all';
}

async function loadView() {
  const qs = query();
  document.getElementById('export').href = '/api/export.csv' + qs;

  const metrics = await getJSON('/api/metrics' + qs);
  document.getElementById('m-total').textContent = metrics.summary.total;
  document.getElementById('m-active').textContent =
    metrics.summary.active + ' (' + metrics.summary.active_pct + '%)';
  document.getElementById('m-completed').textContent =
    metrics.summary.completed + ' (' + metrics.summary.completed_pct + '%)';
  document.getElementById('m-lines').textContent = metrics.summary.priority_lines;
  document.getElementById('m-networks').textContent = metrics.summary.networks;
  document.getElementById('meta').textContent =
    'Datos cargados: ' + metrics.loaded_at + ' · filas descartadas: ' + metrics.dropped_rows;

  const notice = document.getElementById('notice');
  notice.textContent = metrics.notice || '';
  notice.style.display = metrics.notice ? 'block' : 'none';

  const board = await getJSON('/api/kanban' + qs);
  const kanban = document.getElementById('kanban');
  kanban.innerHTML = '';
  for (const col of board.columns || []) {
    const div = document.createElement('div');
    div.className = 'column';
    div.style.background = col.color;
    let html = '<h3>' + esc(col.status) + ' <small>(' + col.projects.length + ')</small></h3>';
    for (const proj of col.projects) {
      html += '<div class="ticket"><div>' + esc(proj.study) + '</div>' +
        '<div class="who">' + esc(proj.principal_investigator || '') + '</div></div>';
    }
    div.innerHTML = html;
    kanban.appendChild(div);
  }

  await loadCounts('priority_line', 'by-line', qs);
  await loadCounts('manager', 'by-manager', qs);

  const list = await getJSON('/api/projects' + qs);
  const tbody = document.getElementById('projects');
  tbody.innerHTML = '';
  for (const proj of list.projects || []) {
    const tr = document.createElement('tr');
    tr.innerHTML = '<td>' + proj.id + '</td><td>' + esc(proj.study) + '</td><td>' +
      esc(proj.priority_line) + '</td><td>' + esc(proj.network || '') + '</td><td>' +
      esc(proj.status || '') + '</td><td>' + esc(proj.principal_investigator || '') + '</td>';
    tbody.appendChild(tr);
  }
}

async function loadCounts(field, target, qs) {
  const sep = qs ? '&' : '?';
  const agg = await getJSON('/api/aggregates' + qs + sep + 'field=' + field);
  const tbody = document.getElementById(target);
  tbody.innerHTML = '';
  for (const entry of agg.entries || []) {
    const tr = document.createElement('tr');
    tr.innerHTML = '<td>' + esc(entry.value) + '</td><td class="count">' + entry.count + '</td>';
    tbody.appendChild(tr);
  }
}

async function refreshData() {
  await fetch('/api/refresh', { method: 'POST' });
  await loadFilters();
  await loadView();
}

for (const name of selectors) {
  document.getElementById(name).addEventListener('change', loadView);
}

loadFilters().then(loadView);
</script>
</body>
</html>
`
