package render

// Nomes dos uniforms do shader de blocos.
const (
	UniformMVP      = "mvp"
	UniformLightDir = "lightDir"
)

// BlockVertexShader recebe apenas a posição (atributo 0) e aplica o mvp.
const BlockVertexShader = `
#version 330

in vec3 vertexPosition;

uniform mat4 mvp;

out vec3 fragWorldPos;

void main()
{
    fragWorldPos = vertexPosition;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// BlockFragmentShader calcula a normal plana da face pelas derivadas da
// posição e aplica luz direcional + ambiente.
const BlockFragmentShader = `
#version 330

in vec3 fragWorldPos;

uniform vec3 lightDir;

out vec4 finalColor;

const float ambience = 0.2;
const vec4 baseColor = vec4(1.0, 1.0, 0.0, 1.0);

void main()
{
    vec3 normal = normalize(cross(dFdx(fragWorldPos), dFdy(fragWorldPos)));
    float diffuse = max(dot(-normalize(lightDir), normal), 0.0);
    finalColor = vec4(((ambience + diffuse) * baseColor).rgb, 1.0);
}
`
